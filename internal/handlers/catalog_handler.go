package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lukas18007/dyschool/internal/dto"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/httpresp"
	"github.com/Lukas18007/dyschool/internal/usecase/catalog"
)

type CatalogHandler struct {
	listTopics          *catalog.ListTopics
	listSpecializations *catalog.ListSpecializations
}

func NewCatalogHandler(
	listTopics *catalog.ListTopics,
	listSpecializations *catalog.ListSpecializations,
) *CatalogHandler {
	return &CatalogHandler{
		listTopics:          listTopics,
		listSpecializations: listSpecializations,
	}
}

// LessonTopics answers the dependent dropdown. Bad ids yield an empty list.
func (h *CatalogHandler) LessonTopics(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Query("specialization_id"), 10, 64)

	topics, err := h.listTopics.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"lesson_topics": dto.ToTopicOptions(topics)})
}

func (h *CatalogHandler) Specializations(c *gin.Context) {
	specs, err := h.listSpecializations.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"specializations": dto.ToSpecializationDTOs(specs)})
}

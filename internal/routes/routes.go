package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/audit"
	"github.com/Lukas18007/dyschool/internal/handlers"
	infraRepo "github.com/Lukas18007/dyschool/internal/infra/repository"
	"github.com/Lukas18007/dyschool/internal/middleware"
	"github.com/Lukas18007/dyschool/internal/session"
	"github.com/Lukas18007/dyschool/internal/timezone"
	ucAccount "github.com/Lukas18007/dyschool/internal/usecase/account"
	ucCatalog "github.com/Lukas18007/dyschool/internal/usecase/catalog"
	ucLesson "github.com/Lukas18007/dyschool/internal/usecase/lesson"
	ucTeacher "github.com/Lukas18007/dyschool/internal/usecase/teacher"
)

// Deps are the singletons shared between the HTTP surface and background jobs.
type Deps struct {
	DB         *gorm.DB
	Sessions   *session.Manager
	Clock      *timezone.Clock
	AuditStore *audit.Store
	Audit      *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	teacherRepo := infraRepo.NewTeacherGormRepository(d.DB)
	lessonRepo := infraRepo.NewLessonGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(accountRepo, d.Audit)
	signInUC := ucAccount.NewSignIn(accountRepo)
	getUserUC := ucAccount.NewGetUser(accountRepo)

	listSpecializationsUC := ucCatalog.NewListSpecializations(catalogRepo)
	listTopicsUC := ucCatalog.NewListTopics(catalogRepo)

	getProfileUC := ucTeacher.NewGetProfile(teacherRepo)
	saveProfileUC := ucTeacher.NewSaveProfile(teacherRepo, catalogRepo, d.Audit)
	teacherDashboardUC := ucTeacher.NewDashboard(teacherRepo, lessonRepo)
	getLessonRequestUC := ucTeacher.NewGetLessonRequest(lessonRepo)
	submitAvailabilityUC := ucTeacher.NewSubmitAvailability(lessonRepo, d.Clock, d.Audit)

	searchUC := ucLesson.NewSearchTeachers(teacherRepo, catalogRepo)
	requestFormUC := ucLesson.NewGetRequestForm(teacherRepo, catalogRepo)
	createRequestUC := ucLesson.NewCreateRequest(lessonRepo, teacherRepo, catalogRepo, d.Audit)
	acceptUC := ucLesson.NewAcceptAvailability(lessonRepo, d.Audit)
	studentDashboardUC := ucLesson.NewStudentDashboard(lessonRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, signInUC, d.Sessions)
	meHandler := handlers.NewMeHandler(getUserUC)
	catalogHandler := handlers.NewCatalogHandler(listTopicsUC, listSpecializationsUC)
	teacherHandler := handlers.NewTeacherHandler(
		getProfileUC,
		saveProfileUC,
		teacherDashboardUC,
		getLessonRequestUC,
		submitAvailabilityUC,
	)
	lessonHandler := handlers.NewLessonHandler(
		searchUC,
		requestFormUC,
		createRequestUC,
		acceptUC,
		studentDashboardUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditStore)

	// ======================================================
	// PUBLIC
	// ======================================================
	optional := middleware.OptionalAuth(d.Sessions)

	r.GET("/health", handlers.Health)
	r.GET("/", optional, meHandler.Home)

	r.POST("/sign-up/", optional, authHandler.SignUp)
	r.POST("/sign-in/", optional, authHandler.SignIn)

	r.GET("/ajax/lesson-topics/", catalogHandler.LessonTopics)
	r.GET("/catalog/specializations/", catalogHandler.Specializations)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(d.Sessions))
	{
		secured.POST("/sign-out/", authHandler.SignOut)
		secured.GET("/me/", meHandler.GetMe)
		secured.GET("/me/activity/", auditLogsHandler.List)

		// ------------------------------
		// TEACHER
		// ------------------------------
		teacherOnly := middleware.RequireTeacher("Only teachers can access this page.")
		secured.GET("/teacher/profile/", teacherOnly, teacherHandler.GetProfile)
		secured.POST("/teacher/profile/", teacherOnly, teacherHandler.SaveProfile)
		secured.GET("/teacher/dashboard/", teacherOnly, teacherHandler.Dashboard)

		availabilityOnly := middleware.RequireTeacher("Only teachers can submit availability.")
		secured.GET("/teacher/availability/:request_id/", availabilityOnly, teacherHandler.AvailabilityForm)
		secured.POST("/teacher/availability/:request_id/", availabilityOnly, teacherHandler.SubmitAvailability)

		// ------------------------------
		// STUDENT
		// ------------------------------
		secured.GET("/lesson/search/",
			middleware.RequireStudent("Only students can search for lessons."),
			lessonHandler.Search,
		)

		requestOnly := middleware.RequireStudent("Only students can create lesson requests.")
		secured.GET("/lesson/request/:teacher_id/", requestOnly, lessonHandler.RequestForm)
		secured.POST("/lesson/request/:teacher_id/", requestOnly, lessonHandler.CreateRequest)

		secured.POST("/lesson/accept/:availability_id/",
			middleware.RequireStudent("Only students can accept availability."),
			lessonHandler.Accept,
		)

		secured.GET("/student/dashboard/",
			middleware.RequireStudent("Only students can access this page."),
			lessonHandler.StudentDashboard,
		)
	}
}

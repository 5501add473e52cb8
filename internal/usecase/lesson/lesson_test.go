package lesson

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/infra/repository"
	"github.com/Lukas18007/dyschool/internal/models"
	"github.com/Lukas18007/dyschool/internal/testutil"
	"github.com/Lukas18007/dyschool/internal/timezone"
	teacheruc "github.com/Lukas18007/dyschool/internal/usecase/teacher"
)

func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// --------------------------------------------------
// Search
// --------------------------------------------------

func TestSearchTeachers(t *testing.T) {
	db := testutil.NewDB(t)
	piano := testutil.CreateTopic(t, db, "Piano", "Técnica Básica")
	harmonia := testutil.CreateTopic(t, db, "Piano", "Harmonia")
	canto := testutil.CreateTopic(t, db, "Canto", "Respiração")

	cheap := testutil.CreateUser(t, db, "ana", models.UserTypeTeacher)
	pricey := testutil.CreateUser(t, db, "bia", models.UserTypeTeacher)
	singer := testutil.CreateUser(t, db, "caio", models.UserTypeTeacher)
	away := testutil.CreateUser(t, db, "duda", models.UserTypeTeacher)

	testutil.CreateProfile(t, db, cheap.ID, 50, piano)
	testutil.CreateProfile(t, db, pricey.ID, 120, piano, harmonia)
	testutil.CreateProfile(t, db, singer.ID, 40, canto)
	awayProfile := testutil.CreateProfile(t, db, away.ID, 30, piano)
	db.Model(awayProfile).Update("is_available", false)

	uc := NewSearchTeachers(repository.NewTeacherGormRepository(db), repository.NewCatalogGormRepository(db))
	ctx := context.Background()

	cases := []struct {
		name string
		in   SearchInput
		want []string
	}{
		{"no filters", SearchInput{}, []string{"ana", "bia", "caio"}},
		{"rate ceiling", SearchInput{MaxHourlyRate: floatPtr(50)}, []string{"ana", "caio"}},
		{"specialization", SearchInput{SpecializationID: uintPtr(piano.SpecializationID)}, []string{"ana", "bia"}},
		{"topic", SearchInput{LessonTopicID: uintPtr(harmonia.ID)}, []string{"bia"}},
		{
			"all filters",
			SearchInput{
				SpecializationID: uintPtr(piano.SpecializationID),
				LessonTopicID:    uintPtr(piano.ID),
				MaxHourlyRate:    floatPtr(100),
				LessonDuration:   intPtr(60),
			},
			[]string{"ana"},
		},
		{"duration does not filter", SearchInput{LessonDuration: intPtr(180)}, []string{"ana", "bia", "caio"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users, err := uc.Execute(ctx, tc.in)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(users) != len(tc.want) {
				t.Fatalf("expected %v, got %d users", tc.want, len(users))
			}
			for i, u := range users {
				if u.Username != tc.want[i] {
					t.Fatalf("position %d: expected %s, got %s", i, tc.want[i], u.Username)
				}
			}
		})
	}
}

func TestSearchValidation(t *testing.T) {
	db := testutil.NewDB(t)
	piano := testutil.CreateTopic(t, db, "Piano", "Técnica Básica")
	canto := testutil.CreateTopic(t, db, "Canto", "Respiração")

	uc := NewSearchTeachers(repository.NewTeacherGormRepository(db), repository.NewCatalogGormRepository(db))

	cases := []struct {
		name  string
		in    SearchInput
		field string
	}{
		{"topic outside specialization", SearchInput{SpecializationID: uintPtr(piano.SpecializationID), LessonTopicID: uintPtr(canto.ID)}, "lesson_topic"},
		{"unknown topic", SearchInput{LessonTopicID: uintPtr(999)}, "lesson_topic"},
		{"unknown specialization", SearchInput{SpecializationID: uintPtr(999)}, "specialization"},
		{"negative rate", SearchInput{MaxHourlyRate: floatPtr(-1)}, "max_hourly_rate"},
		{"duration too short", SearchInput{LessonDuration: intPtr(15)}, "lesson_duration"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.in)
			be, ok := err.(httperr.BusinessError)
			if !ok || be.Kind != httperr.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := be.Fields[tc.field]; !ok {
				t.Fatalf("expected error on %s, got %v", tc.field, be.Fields)
			}
		})
	}
}

// --------------------------------------------------
// Lesson request
// --------------------------------------------------

func TestRequestFormOffersOnlyTaughtTopics(t *testing.T) {
	db := testutil.NewDB(t)
	student := testutil.CreateUser(t, db, "sofia", models.UserTypeStudent)
	teacher := testutil.CreateUser(t, db, "tiago", models.UserTypeTeacher)
	taught := testutil.CreateTopic(t, db, "Piano", "Técnica Básica")
	testutil.CreateTopic(t, db, "Piano", "Harmonia")
	testutil.CreateProfile(t, db, teacher.ID, 80, taught)

	uc := NewGetRequestForm(repository.NewTeacherGormRepository(db), repository.NewCatalogGormRepository(db))

	form, err := uc.Execute(context.Background(), teacher.ID)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if form.Teacher.ID != teacher.ID {
		t.Fatalf("unexpected teacher %d", form.Teacher.ID)
	}
	if len(form.LessonTopics) != 1 || form.LessonTopics[0].ID != taught.ID {
		t.Fatalf("expected only the taught topic, got %+v", form.LessonTopics)
	}

	if _, err := uc.Execute(context.Background(), student.ID); !httperr.IsBusiness(err, "teacher_not_found") {
		t.Fatalf("a student id must not resolve to a teacher, got %v", err)
	}
}

func TestCreateRequest(t *testing.T) {
	db := testutil.NewDB(t)
	student := testutil.CreateUser(t, db, "sofia", models.UserTypeStudent)
	teacher := testutil.CreateUser(t, db, "tiago", models.UserTypeTeacher)
	taught := testutil.CreateTopic(t, db, "Piano", "Técnica Básica")
	untaught := testutil.CreateTopic(t, db, "Piano", "Harmonia")
	testutil.CreateProfile(t, db, teacher.ID, 80, taught)

	uc := NewCreateRequest(
		repository.NewLessonGormRepository(db),
		repository.NewTeacherGormRepository(db),
		repository.NewCatalogGormRepository(db),
		nil,
	)
	ctx := context.Background()

	req, _, err := uc.Execute(ctx, CreateRequestInput{
		StudentID:       student.ID,
		TeacherID:       teacher.ID,
		LessonTopicID:   taught.ID,
		LessonDuration:  60,
		MaxHourlyRate:   80,
		AdditionalNotes: "  Iniciante  ",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if req.Status != "pending" || req.StudentID != student.ID || req.AdditionalNotes != "Iniciante" {
		t.Fatalf("unexpected request: %+v", req)
	}

	cases := []struct {
		name  string
		in    CreateRequestInput
		field string
	}{
		{"untaught topic", CreateRequestInput{LessonTopicID: untaught.ID, LessonDuration: 60}, "lesson_topic"},
		{"short lesson", CreateRequestInput{LessonTopicID: taught.ID, LessonDuration: 20}, "lesson_duration"},
		{"long lesson", CreateRequestInput{LessonTopicID: taught.ID, LessonDuration: 200}, "lesson_duration"},
		{"negative rate", CreateRequestInput{LessonTopicID: taught.ID, LessonDuration: 60, MaxHourlyRate: -5}, "max_hourly_rate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.StudentID = student.ID
			tc.in.TeacherID = teacher.ID
			_, _, err := uc.Execute(ctx, tc.in)
			be, ok := err.(httperr.BusinessError)
			if !ok || be.Kind != httperr.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := be.Fields[tc.field]; !ok {
				t.Fatalf("expected error on %s, got %v", tc.field, be.Fields)
			}
		})
	}

	_, _, err = uc.Execute(ctx, CreateRequestInput{
		StudentID: student.ID, TeacherID: 999, LessonTopicID: taught.ID, LessonDuration: 60,
	})
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found for unknown teacher, got %v", err)
	}

	var count int64
	db.Model(&models.LessonRequest{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one stored request, got %d", count)
	}
}

// --------------------------------------------------
// Acceptance
// --------------------------------------------------

type world struct {
	db      *gorm.DB
	clock   *timezone.Clock
	student *models.User
	teacher *models.User
	request *models.LessonRequest
}

// newWorld builds the Piano/Técnica Básica scenario with a pending request.
func newWorld(t *testing.T) *world {
	db := testutil.NewDB(t)
	student := testutil.CreateUser(t, db, "sofia", models.UserTypeStudent)
	teacher := testutil.CreateUser(t, db, "tiago", models.UserTypeTeacher)
	topic := testutil.CreateTopic(t, db, "Piano", "Técnica Básica")
	testutil.CreateProfile(t, db, teacher.ID, 75, topic)

	req, _, err := NewCreateRequest(
		repository.NewLessonGormRepository(db),
		repository.NewTeacherGormRepository(db),
		repository.NewCatalogGormRepository(db),
		nil,
	).Execute(context.Background(), CreateRequestInput{
		StudentID:      student.ID,
		TeacherID:      teacher.ID,
		LessonTopicID:  topic.ID,
		LessonDuration: 60,
		MaxHourlyRate:  80,
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	return &world{
		db:      db,
		clock:   timezone.Fixed(time.Date(2030, 3, 10, 13, 0, 0, 0, time.UTC), "America/Sao_Paulo"),
		student: student,
		teacher: teacher,
		request: req,
	}
}

func (w *world) propose(t *testing.T, teacherID uint, date, clock string) *models.TeacherAvailability {
	t.Helper()
	a, err := teacheruc.NewSubmitAvailability(repository.NewLessonGormRepository(w.db), w.clock, nil).
		Execute(context.Background(), teacheruc.SubmitAvailabilityInput{
			TeacherID:       teacherID,
			LessonRequestID: w.request.ID,
			AvailableDate:   date,
			AvailableTime:   clock,
			Duration:        60,
		})
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	return a
}

func TestAcceptAvailabilityCreatesBooking(t *testing.T) {
	w := newWorld(t)
	a := w.propose(t, w.teacher.ID, "2030-03-11", "14:00")

	uc := NewAcceptAvailability(repository.NewLessonGormRepository(w.db), nil)
	booking, err := uc.Execute(context.Background(), w.student.ID, a.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	var bookings []models.LessonBooking
	w.db.Find(&bookings)
	if len(bookings) != 1 {
		t.Fatalf("expected exactly one booking, got %d", len(bookings))
	}
	b := bookings[0]
	if b.ID != booking.ID || b.Status != "confirmed" {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if b.LessonRequestID != w.request.ID || b.TeacherID != w.teacher.ID || b.TeacherAvailabilityID != a.ID {
		t.Fatalf("booking references wrong rows: %+v", b)
	}

	var stored models.TeacherAvailability
	w.db.First(&stored, a.ID)
	if !stored.IsAccepted {
		t.Fatalf("availability should be accepted")
	}

	var req models.LessonRequest
	w.db.First(&req, w.request.ID)
	if req.Status != "matched" {
		t.Fatalf("request should be matched, got %s", req.Status)
	}
}

func TestAcceptAvailabilityRejectsNonOwner(t *testing.T) {
	w := newWorld(t)
	intruder := testutil.CreateUser(t, w.db, "outra", models.UserTypeStudent)
	a := w.propose(t, w.teacher.ID, "2030-03-11", "14:00")

	_, err := NewAcceptAvailability(repository.NewLessonGormRepository(w.db), nil).
		Execute(context.Background(), intruder.ID, a.ID)

	be, ok := err.(httperr.BusinessError)
	if !ok || be.Code != "not_request_owner" || be.Kind != httperr.KindForbidden {
		t.Fatalf("expected not_request_owner, got %v", err)
	}
	if be.Redirect != "/student/dashboard/" {
		t.Fatalf("unexpected redirect %q", be.Redirect)
	}

	var bookings int64
	w.db.Model(&models.LessonBooking{}).Count(&bookings)
	var stored models.TeacherAvailability
	w.db.First(&stored, a.ID)
	var req models.LessonRequest
	w.db.First(&req, w.request.ID)

	if bookings != 0 || stored.IsAccepted || req.Status != "pending" {
		t.Fatalf("rows changed: bookings=%d accepted=%v status=%s", bookings, stored.IsAccepted, req.Status)
	}
}

func TestAcceptAvailabilityRejectsSecondAcceptance(t *testing.T) {
	w := newWorld(t)
	other := testutil.CreateUser(t, w.db, "telma", models.UserTypeTeacher)
	first := w.propose(t, w.teacher.ID, "2030-03-11", "14:00")
	second := w.propose(t, other.ID, "2030-03-12", "09:00")

	uc := NewAcceptAvailability(repository.NewLessonGormRepository(w.db), nil)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, w.student.ID, first.ID); err != nil {
		t.Fatalf("first acceptance: %v", err)
	}

	_, err := uc.Execute(ctx, w.student.ID, second.ID)
	if !httperr.IsBusiness(err, "request_not_pending") {
		t.Fatalf("expected request_not_pending, got %v", err)
	}

	_, err = uc.Execute(ctx, w.student.ID, first.ID)
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("re-accepting must conflict, got %v", err)
	}

	var bookings int64
	w.db.Model(&models.LessonBooking{}).Count(&bookings)
	if bookings != 1 {
		t.Fatalf("expected a single booking, got %d", bookings)
	}

	var stored models.TeacherAvailability
	w.db.First(&stored, second.ID)
	if stored.IsAccepted {
		t.Fatalf("competing availability must stay unaccepted")
	}
}

func TestAcceptAvailabilityConcurrent(t *testing.T) {
	w := newWorld(t)
	other := testutil.CreateUser(t, w.db, "telma", models.UserTypeTeacher)
	ids := []uint{
		w.propose(t, w.teacher.ID, "2030-03-11", "14:00").ID,
		w.propose(t, other.ID, "2030-03-12", "09:00").ID,
	}

	uc := NewAcceptAvailability(repository.NewLessonGormRepository(w.db), nil)

	var wg sync.WaitGroup
	errs := make([]error, len(ids))
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), w.student.ID, id)
		}(i, id)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case httperr.IsBusiness(err, "request_not_pending"):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("exactly one acceptance must win, got %d", ok)
	}

	var bookings int64
	w.db.Model(&models.LessonBooking{}).Count(&bookings)
	if bookings != 1 {
		t.Fatalf("expected one booking, got %d", bookings)
	}
}

func TestAcceptAvailabilityNotFound(t *testing.T) {
	w := newWorld(t)
	_, err := NewAcceptAvailability(repository.NewLessonGormRepository(w.db), nil).
		Execute(context.Background(), w.student.ID, 999)
	if !httperr.IsBusiness(err, "availability_not_found") {
		t.Fatalf("expected availability_not_found, got %v", err)
	}
}

// --------------------------------------------------
// Dashboards
// --------------------------------------------------

func TestStudentDashboard(t *testing.T) {
	w := newWorld(t)
	other := testutil.CreateUser(t, w.db, "telma", models.UserTypeTeacher)
	first := w.propose(t, w.teacher.ID, "2030-03-11", "14:00")
	second := w.propose(t, other.ID, "2030-03-12", "09:00")

	if _, err := NewAcceptAvailability(repository.NewLessonGormRepository(w.db), nil).
		Execute(context.Background(), w.student.ID, first.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// someone else's request must not leak
	stranger := testutil.CreateUser(t, w.db, "outra", models.UserTypeStudent)
	w.db.Create(&models.LessonRequest{
		StudentID:      stranger.ID,
		LessonTopicID:  w.request.LessonTopicID,
		LessonDuration: 60,
		Status:         "pending",
	})

	view, err := NewStudentDashboard(repository.NewLessonGormRepository(w.db)).Execute(context.Background(), w.student.ID)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if len(view.Requests) != 1 || view.Requests[0].ID != w.request.ID {
		t.Fatalf("unexpected requests: %+v", view.Requests)
	}
	if len(view.Availabilities) != 2 || view.Availabilities[0].ID != second.ID {
		t.Fatalf("expected both availabilities newest first, got %d", len(view.Availabilities))
	}
	if view.Availabilities[1].Teacher.Username != "tiago" {
		t.Fatalf("teacher not preloaded")
	}
	if len(view.Bookings) != 1 || view.Bookings[0].TeacherAvailabilityID != first.ID {
		t.Fatalf("unexpected bookings: %+v", view.Bookings)
	}
}

// --------------------------------------------------
// Completion sweep
// --------------------------------------------------

func TestCompletePastBookings(t *testing.T) {
	w := newWorld(t)
	a := w.propose(t, w.teacher.ID, "2030-03-11", "14:00")

	repo := repository.NewLessonGormRepository(w.db)
	if _, err := NewAcceptAvailability(repo, nil).Execute(context.Background(), w.student.ID, a.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	loc := timezone.Location("America/Sao_Paulo")

	// lesson runs 14:00-15:00 on the 11th
	during := timezone.Fixed(time.Date(2030, 3, 11, 14, 30, 0, 0, loc), "America/Sao_Paulo")
	n, err := NewCompletePastBookings(repo, during, nil).Execute(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("lesson in progress must not complete: n=%d err=%v", n, err)
	}

	after := timezone.Fixed(time.Date(2030, 3, 11, 15, 0, 0, 0, loc), "America/Sao_Paulo")
	n, err = NewCompletePastBookings(repo, after, nil).Execute(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("expected one completion: n=%d err=%v", n, err)
	}

	var b models.LessonBooking
	w.db.First(&b)
	var req models.LessonRequest
	w.db.First(&req, w.request.ID)
	if b.Status != "completed" || req.Status != "completed" {
		t.Fatalf("statuses not completed: booking=%s request=%s", b.Status, req.Status)
	}

	n, err = NewCompletePastBookings(repo, after, nil).Execute(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("second sweep must be a no-op: n=%d err=%v", n, err)
	}
}

func TestAvailabilityEndsAt(t *testing.T) {
	loc := timezone.Location("America/Sao_Paulo")
	a := models.TeacherAvailability{
		AvailableDate: datatypes.Date(time.Date(2030, 3, 11, 0, 0, 0, 0, time.UTC)),
		AvailableTime: datatypes.NewTime(23, 30, 0, 0),
		Duration:      90,
	}
	want := time.Date(2030, 3, 12, 1, 0, 0, 0, loc)
	if got := a.EndsAt(loc); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

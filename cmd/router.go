package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	accountsHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/accounts"
	adminHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/admin"
	availabilityRulesHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/availability_rules"
	catalogHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/catalog"
	createBookingHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/create_booking"
	favoritesHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/favorites"
	getAvailableSlotsHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/get_available_slots"
	getPatientBookingsHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/get_patient_bookings"
	getProfessionalBookingsHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/get_professional_bookings"
	professionalCabinetsHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/professional_cabinets"
	professionalProfileHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/professional_profile"
	updateBookingStatusHandler "github.com/m04kA/SMC-MedicalBooking/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/auth/session"
	"github.com/m04kA/SMC-MedicalBooking/internal/config"
	accountsService "github.com/m04kA/SMC-MedicalBooking/internal/service/accounts"
	availabilityService "github.com/m04kA/SMC-MedicalBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-MedicalBooking/internal/service/bookings"
	cabinetsService "github.com/m04kA/SMC-MedicalBooking/internal/service/cabinets"
	catalogService "github.com/m04kA/SMC-MedicalBooking/internal/service/catalog"
	favoritesService "github.com/m04kA/SMC-MedicalBooking/internal/service/favorites"
	professionalsService "github.com/m04kA/SMC-MedicalBooking/internal/service/professionals"
	createBookingUC "github.com/m04kA/SMC-MedicalBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-MedicalBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
	"github.com/m04kA/SMC-MedicalBooking/pkg/metrics"
)

type serviceSet struct {
	accounts      *accountsService.Service
	availability  *availabilityService.Service
	bookings      *bookingsService.Service
	cabinets      *cabinetsService.Service
	catalog       *catalogService.Service
	favorites     *favoritesService.Service
	professionals *professionalsService.Service

	createBooking     *createBookingUC.UseCase
	getAvailableSlots *getAvailableSlotsUC.UseCase
}

func newRouter(
	cfg *config.Config,
	svc *serviceSet,
	sessions *session.Manager,
	metricsCollector *metrics.Metrics,
	log *logger.Logger,
) *mux.Router {
	// Инициализируем handlers
	accounts := accountsHandler.NewHandler(svc.accounts, cfg.Auth.CookieName, log)
	admin := adminHandler.NewHandler(svc.bookings, svc.accounts, svc.professionals, log)
	availabilityRules := availabilityRulesHandler.NewHandler(svc.availability, log)
	catalog := catalogHandler.NewHandler(svc.catalog, log)
	createBooking := createBookingHandler.NewHandler(svc.createBooking, log)
	favorites := favoritesHandler.NewHandler(svc.favorites, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(svc.getAvailableSlots, log)
	getPatientBookings := getPatientBookingsHandler.NewHandler(svc.bookings, log)
	getProfessionalBookings := getProfessionalBookingsHandler.NewHandler(svc.bookings, log)
	professionalCabinets := professionalCabinetsHandler.NewHandler(svc.cabinets, log)
	professionalProfile := professionalProfileHandler.NewHandler(svc.professionals, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(svc.bookings, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	r.HandleFunc("/register/", accounts.Register).Methods(http.MethodPost)
	r.HandleFunc("/login/", accounts.Login).Methods(http.MethodPost)

	// --- Справочники ---
	r.HandleFunc("/specialites/", catalog.Specialties).Methods(http.MethodGet)
	r.HandleFunc("/specialites/{id}/motifs/", catalog.Reasons).Methods(http.MethodGet)
	r.HandleFunc("/professionnels/", catalog.Professionals).Methods(http.MethodGet)
	r.HandleFunc("/cabinets/", catalog.Cabinets).Methods(http.MethodGet)

	// Свободные слоты специалиста на дату (или его правила без даты)
	r.HandleFunc("/professionnels/{id}/disponibilites/", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Bearer токен или cookie сессии)
	// ============================================================

	protected := r.PathPrefix("/").Subrouter()
	protected.Use(middleware.Auth(sessions, cfg.Auth.CookieName, log))

	// --- Учётная запись ---
	protected.HandleFunc("/logout/", accounts.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/check-admin/", accounts.CheckAdmin).Methods(http.MethodGet)
	protected.HandleFunc("/user/profile/", accounts.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/user/profile/", accounts.UpdateProfile).Methods(http.MethodPut)

	// --- Бронирования ---
	protected.HandleFunc("/rendez-vous/", getPatientBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rendez-vous/create/", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rendez-vous/professionnel/", getProfessionalBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rendez-vous/{id}/statut/", updateBookingStatus.Handle).Methods(http.MethodPut)

	// --- Кабинет специалиста ---
	protected.HandleFunc("/professionnel/profile/", professionalProfile.Get).Methods(http.MethodGet)
	protected.HandleFunc("/professionnel/profile/", professionalProfile.Update).Methods(http.MethodPut)
	protected.HandleFunc("/professionnel/disponibilites/", availabilityRules.List).Methods(http.MethodGet)
	protected.HandleFunc("/professionnel/disponibilites/", availabilityRules.Create).Methods(http.MethodPost)
	protected.HandleFunc("/professionnel/disponibilites/{id}/", availabilityRules.Update).Methods(http.MethodPut)
	protected.HandleFunc("/professionnel/disponibilites/{id}/", availabilityRules.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/professionnel/cabinets/", professionalCabinets.List).Methods(http.MethodGet)
	protected.HandleFunc("/professionnel/cabinets/", professionalCabinets.Create).Methods(http.MethodPost)
	protected.HandleFunc("/professionnel/cabinets/{id}/", professionalCabinets.Update).Methods(http.MethodPut)
	protected.HandleFunc("/professionnel/cabinets/{id}/", professionalCabinets.Delete).Methods(http.MethodDelete)

	// --- Избранное ---
	protected.HandleFunc("/favoris/", favorites.List).Methods(http.MethodGet)
	protected.HandleFunc("/favoris/", favorites.Add).Methods(http.MethodPost)
	protected.HandleFunc("/favoris/{professionnel_id}/", favorites.Remove).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	adminRoutes := protected.PathPrefix("/").Subrouter()
	adminRoutes.Use(middleware.RequireAdmin)

	adminRoutes.HandleFunc("/admin/rendez-vous/", admin.ListBookings).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/admin/rendez-vous/{id}/", admin.DeleteBooking).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/admin/clients/", admin.ListClients).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/admin/clients/{id}/", admin.DeleteClient).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/admin/professionnels/{id}/validation/", admin.SetValidation).Methods(http.MethodPut)
	adminRoutes.HandleFunc("/professionnels/manage/", admin.ListProfessionals).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/professionnels/manage/", admin.CreateProfessional).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/professionnels/manage/{id}/", admin.GetProfessional).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/professionnels/manage/{id}/", admin.UpdateProfessional).Methods(http.MethodPut)
	adminRoutes.HandleFunc("/professionnels/manage/{id}/", admin.DeleteProfessional).Methods(http.MethodDelete)

	return r
}

package services

// ServiceContainer groups every service for DI wiring.
type ServiceContainer struct {
	AuthService         AuthService
	NotificationService NotificationService
	PreferenceService   PreferenceService
	AuditService        AuditService
}

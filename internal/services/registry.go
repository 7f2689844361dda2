package services

// ServiceContainer carries every service the handler layer depends on.
type ServiceContainer struct {
	Auth        AuthService
	User        UserService
	Gig         GigService
	Order       OrderService
	Review      ReviewService
	Message     MessageService
	Transaction TransactionService
	Audit       AuditService
}

package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	UserService      UserService
	ProfileService   ProfileService
	PortfolioService PortfolioService
	SkillsService    SkillsService
}

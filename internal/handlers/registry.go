package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	UserHandler      *UserHandler
	ProfileHandler   *ProfileHandler
	PortfolioHandler *PortfolioHandler
	SkillsHandler    *SkillsHandler
}

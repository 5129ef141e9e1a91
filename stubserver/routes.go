package stubserver

import "net/http"

func (s *Server) initRoutes() {
	s.registerPublic("POST /auth/login", s.LoginHandler())
	s.registerPublic("POST /auth/refresh", s.RefreshHandler())

	s.registerProtected("GET /user/me", s.MeHandler())
	s.registerProtected("GET /user/admin/dashboard", s.DashboardHandler())
	s.registerProtected("POST /user/{id}/ban", s.BanHandler())
	s.registerProtected("POST /user/{id}/unban", s.UnbanHandler())

	s.registerProtected("GET /matching/user/{id}", s.UserRecordsHandler("matching", "user1Id", "user2Id"))
	s.registerProtected("GET /photos/user/{id}", s.UserRecordsHandler("photos", "userId"))
	s.registerProtected("GET /concepts/{id}/stats", s.ConceptStatsHandler())

	s.registerProtected("POST /notifications/admin/send", s.SendNotificationHandler())
	s.registerProtected("POST /notifications/push/broadcast", s.BroadcastHandler())

	s.registerProtected("GET /{resource}", s.ListHandler())
	s.registerProtected("POST /{resource}", s.CreateHandler())
	s.registerProtected("GET /{resource}/{id}", s.GetHandler())
	s.registerProtected("PUT /{resource}/{id}", s.UpdateHandler())
	s.registerProtected("PATCH /{resource}/{id}", s.UpdateHandler())
	s.registerProtected("DELETE /{resource}/{id}", s.DeleteHandler())
}

func (s *Server) registerPublic(pattern string, handler http.HandlerFunc) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, chainMiddleware(handler, s.loggingMiddleware))
}

func (s *Server) registerProtected(pattern string, handler http.HandlerFunc) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, chainMiddleware(handler, s.loggingMiddleware, s.requireAuth))
}

package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	mux.HandleFunc("POST /v1/teams/{teamID}/players", handler.CreateTeamPlayer)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/roster/me/players", RequireAuth(verifier, http.HandlerFunc(handler.ListMyRosterPlayers)))
	mux.Handle("POST /v1/roster/me/players", RequireAuth(verifier, http.HandlerFunc(handler.AddPlayerToMyRoster)))
	mux.Handle("GET /v1/dashboard/cards", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboardCards)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/roster-import", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRosterImportJob)))
}

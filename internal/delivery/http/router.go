package http

import (
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	"weddinginvite/internal/delivery/http/controllers"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Health     *controllers.HealthController
	Invite     *controllers.InviteController
	Clients    *controllers.ClientController
	Ceremonies *controllers.CeremonyController
	Photos     *controllers.PhotoController
	Guestbook  *controllers.GuestbookController
	Settings   *controllers.SettingsController
}

// PublicObjectsPrefix is the path under which a local object store is served.
const PublicObjectsPrefix = "/storage/v1/object/public/"

// NewRouter initializes the HTTP router with all application routes.
// requireAuth guards the admin routes. When publicObjects is non-nil it is
// mounted at PublicObjectsPrefix and sees paths of the form "/<bucket>/<path>".
func NewRouter(c Controllers, requireAuth func(http.HandlerFunc) http.HandlerFunc, publicObjects http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", c.Health.Health)

	// Public invitation
	mux.HandleFunc("GET /api/invite/{slug}", c.Invite.GetInvitation)
	mux.HandleFunc("POST /api/invite/{slug}/rsvp", c.Invite.SubmitRSVP)
	mux.HandleFunc("GET /api/invite/{slug}/blessings", c.Invite.ListBlessings)
	mux.HandleFunc("POST /api/invite/{slug}/blessings", c.Invite.PostBlessing)
	mux.HandleFunc("GET /api/settings", c.Settings.GetSettings)

	// Admin
	mux.HandleFunc("GET /api/admin/clients", requireAuth(c.Clients.ListClients))
	mux.HandleFunc("POST /api/admin/clients", requireAuth(c.Clients.CreateClient))
	mux.HandleFunc("GET /api/admin/clients/{id}", requireAuth(c.Clients.GetClient))
	mux.HandleFunc("PATCH /api/admin/clients/{id}", requireAuth(c.Clients.UpdateClient))

	mux.HandleFunc("GET /api/admin/clients/{id}/ceremonies", requireAuth(c.Ceremonies.ListCeremonies))
	mux.HandleFunc("POST /api/admin/clients/{id}/ceremonies", requireAuth(c.Ceremonies.AddCeremony))
	mux.HandleFunc("PATCH /api/admin/clients/{id}/ceremonies/{ceremonyID}", requireAuth(c.Ceremonies.UpdateCeremony))
	mux.HandleFunc("DELETE /api/admin/clients/{id}/ceremonies/{ceremonyID}", requireAuth(c.Ceremonies.DeleteCeremony))

	mux.HandleFunc("GET /api/admin/clients/{id}/photos", requireAuth(c.Photos.ListPhotos))
	mux.HandleFunc("POST /api/admin/clients/{id}/photos", requireAuth(c.Photos.UploadPhoto))
	mux.HandleFunc("DELETE /api/admin/clients/{id}/photos/{photoID}", requireAuth(c.Photos.DeletePhoto))

	mux.HandleFunc("GET /api/admin/clients/{id}/rsvps", requireAuth(c.Guestbook.ListRSVPs))
	mux.HandleFunc("GET /api/admin/templates", requireAuth(c.Guestbook.ListTemplates))

	mux.HandleFunc("GET /api/admin/settings", requireAuth(c.Settings.GetSettings))
	mux.HandleFunc("PUT /api/admin/settings", requireAuth(c.Settings.UpdateSettings))

	if publicObjects != nil {
		mux.Handle("GET "+PublicObjectsPrefix, http.StripPrefix(strings.TrimSuffix(PublicObjectsPrefix, "/"), publicObjects))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

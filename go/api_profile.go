package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profilemapper "github.com/Apurer/delish-express/internal/domains/profile/adapters/http/mapper"
	profileports "github.com/Apurer/delish-express/internal/domains/profile/ports"
	"github.com/Apurer/delish-express/internal/shared/notify"
)

// ProfileAPI serves the mock account page and the session's pending notices.
type ProfileAPI struct {
	profile profileports.Service
	session *Session
}

func NewProfileAPI(profile profileports.Service, session *Session) ProfileAPI {
	return ProfileAPI{profile: profile, session: session}
}

// Get /api/profile
func (api *ProfileAPI) GetProfile(c *gin.Context) {
	overview, err := api.profile.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profilemapper.FromOverview(overview))
}

// Get /api/notices
// Returns and clears the toasts raised since the last call.
func (api *ProfileAPI) DrainNotices(c *gin.Context) {
	notices := api.session.Notices().Drain()
	if notices == nil {
		notices = []notify.Notice{}
	}
	c.JSON(http.StatusOK, notices)
}

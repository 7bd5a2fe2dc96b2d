// Package app wires the HTTP surface together
package app

import (
	"time"

	"notesapp/notes-api/app/auth"
	"notesapp/notes-api/app/notes"
	"notesapp/notes-api/app/root"
	"notesapp/notes-api/app/user"
	"notesapp/notes-api/db"
	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/service"
	"notesapp/notes-api/pkg/middleware"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	d := &internal.Deps{
		Mailer:           service.NewSMTPMailer(),
		Google:           service.NewIDTokenVerifier(),
		MailOnFailure:    viper.GetString("mail.on_failure"),
		GoogleLinkPolicy: viper.GetString("google.link_policy"),
	}

	conn, err := db.New()
	if err != nil {
		return nil, err
	}
	d.DB = conn

	makeLogger()

	// Expired codes only hurt as clutter, sweeping daily is plenty
	service.OTPCleanup(time.Hour*24, conn)

	return newRouter(d), nil
}

// newRouter builds the gin engine around an already assembled Deps so
// tests can swap the mailer and the Google verifier for stubs
func newRouter(d *internal.Deps) *gin.Engine {
	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	authed := middleware.NewAuthMiddleware(d.DB)

	m := router.Group("/api", middleware.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)
	}

	a := m.Group("/auth")
	{
		// POST /api/auth/signup 	-> Registers a new password account
		a.POST("/signup", func(c *gin.Context) { auth.Signup(c, d) })

		// POST /api/auth/send-otp 	-> Emails a verification passcode
		a.POST("/send-otp", func(c *gin.Context) { auth.SendOTP(c, d) })

		// POST /api/auth/verify-otp	-> Consumes a passcode and logs in
		a.POST("/verify-otp", func(c *gin.Context) { auth.VerifyOTP(c, d) })

		// POST /api/auth/login 	-> Logs in with a password
		a.POST("/login", func(c *gin.Context) { auth.Login(c, d) })

		// POST /api/auth/google 	-> Logs in with a Google ID token
		a.POST("/google", func(c *gin.Context) { auth.GoogleLogin(c, d) })
	}

	n := m.Group("/notes", authed)
	{
		// GET /api/notes		-> Lists the user's notes
		n.GET("", func(c *gin.Context) { notes.NoteList(c, d) })

		// GET /api/notes/:id		-> Returns a single note
		n.GET("/:id", func(c *gin.Context) { notes.NoteFetch(c, d) })

		// POST /api/notes		-> Creates a note
		n.POST("", func(c *gin.Context) { notes.NoteCreate(c, d) })

		// PUT /api/notes/:id		-> Updates title and/or content
		n.PUT("/:id", func(c *gin.Context) { notes.NoteUpdate(c, d) })

		// DELETE /api/notes/:id	-> Deletes a note
		n.DELETE("/:id", func(c *gin.Context) { notes.NoteDelete(c, d) })
	}

	u := m.Group("/user", authed)
	{
		// GET /api/user/profile	-> Returns the user's profile
		u.GET("/profile", func(c *gin.Context) { user.ProfileFetch(c, d) })

		// PUT /api/user/profile	-> Updates the display name
		u.PUT("/profile", func(c *gin.Context) { user.ProfileUpdate(c, d) })
	}

	return router
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

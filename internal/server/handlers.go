package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prawat/portfolio/internal/contact"
	"github.com/prawat/portfolio/internal/nav"
	"github.com/prawat/portfolio/internal/session"
	"github.com/prawat/portfolio/internal/site"
	"github.com/prawat/portfolio/internal/theme"
)

const (
	rateLimitedMessage = "You're sending messages too quickly. Please wait a minute and try again."
	missingPrefix      = "Please fill in: "
	invalidEmail       = "Please enter a valid email address."
)

type fieldView struct {
	Name  string
	Label string
	Type  string
	Value string
}

type contactView struct {
	Fields   []fieldView
	Status   string
	Feedback string
	Sending  bool
}

type successView struct {
	Feedback   string
	ResetAfter string
}

type indexView struct {
	Site     *site.Page
	Menu     []nav.Item
	Sections []nav.Section
	Contact  contactView
	Theme    theme.Theme
	Year     int
}

func newContactView(form *contact.Form, st contact.State) contactView {
	v := contactView{
		Status:   st.Status.String(),
		Feedback: st.Feedback,
		Sending:  st.Status == contact.Sending,
	}
	for _, name := range form.FieldNames() {
		v.Fields = append(v.Fields, fieldView{
			Name:  name,
			Label: label(name),
			Type:  inputType(name),
			Value: st.Fields[name],
		})
	}
	return v
}

func label(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func inputType(name string) string {
	switch name {
	case "email":
		return "email"
	case "message":
		return "textarea"
	default:
		return "text"
	}
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// visitor returns the caller's session, issuing a cookie for new ones.
func (s *Server) visitor(c *gin.Context) *session.Session {
	id, _ := c.Cookie(session.CookieName)
	sess, created := s.sessions.Get(id)
	if created {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     session.CookieName,
			Value:    sess.ID,
			Path:     "/",
			MaxAge:   int(s.cfg.Contact.SessionTTL / time.Second),
			HttpOnly: true,
			Secure:   c.Request.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

func (s *Server) handleIndex(c *gin.Context) {
	sess := s.visitor(c)
	c.HTML(http.StatusOK, "index.html", indexView{
		Site:     s.page,
		Menu:     s.menu(),
		Sections: s.cfg.Nav.Sections,
		Contact:  newContactView(sess.Form, sess.Form.State()),
		Theme:    theme.FromRequest(c.Request),
		Year:     time.Now().Year(),
	})
}

func (s *Server) handleContactForm(c *gin.Context) {
	sess := s.visitor(c)
	c.HTML(http.StatusOK, "contact-form.html", newContactView(sess.Form, sess.Form.State()))
}

// handleContactStatus reports the visitor's form state. Unknown visitors get
// an idle state without a session being created.
func (s *Server) handleContactStatus(c *gin.Context) {
	id, _ := c.Cookie(session.CookieName)
	sess, ok := s.sessions.Lookup(id)
	if !ok {
		c.JSON(http.StatusOK, contact.State{Fields: map[string]string{}, Status: contact.Idle})
		return
	}
	c.JSON(http.StatusOK, sess.Form.State())
}

// handleContactSubmit submits the posted fields through the visitor's form and
// waits for delivery to resolve. The rate limit only counts submissions that
// pass validation.
func (s *Server) handleContactSubmit(c *gin.Context) {
	sess := s.visitor(c)
	form := sess.Form

	values := make(map[string]string, len(form.FieldNames()))
	for _, name := range form.FieldNames() {
		values[name] = c.PostForm(name)
	}

	done, err := form.SubmitFields(c.Request.Context(), values, sess.Allow)
	if err != nil {
		var verr *contact.ValidationError
		switch {
		case errors.Is(err, contact.ErrInFlight):
			s.renderForm(c, http.StatusConflict, form, "")
		case errors.Is(err, contact.ErrThrottled):
			s.renderForm(c, http.StatusTooManyRequests, form, rateLimitedMessage)
		case errors.As(err, &verr):
			s.renderForm(c, http.StatusUnprocessableEntity, form, validationMessage(verr))
		default:
			s.logger.Error("contact submit rejected", zap.Error(err))
			s.renderForm(c, http.StatusServiceUnavailable, form, s.cfg.Contact.FailureMessage)
		}
		return
	}

	select {
	case <-done:
	case <-c.Request.Context().Done():
		return
	}

	st := form.State()
	if !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, "/#contact")
		return
	}
	if st.Status == contact.Succeeded {
		c.HTML(http.StatusOK, "contact-success.html", successView{
			Feedback:   st.Feedback,
			ResetAfter: resetAfter(s.cfg.Contact.ResetDelay),
		})
		return
	}
	// Failures keep the typed fields so the visitor can retry.
	c.HTML(http.StatusOK, "contact-form.html", newContactView(form, st))
}

// renderForm shows the form with a local message that is not part of the
// form's own state.
func (s *Server) renderForm(c *gin.Context, code int, form *contact.Form, message string) {
	v := newContactView(form, form.State())
	if message != "" {
		v.Feedback = message
		v.Status = "rejected"
	}
	c.HTML(code, "contact-form.html", v)
}

func (s *Server) handleThemeToggle(c *gin.Context) {
	t := theme.FromRequest(c.Request).Toggle()
	http.SetCookie(c.Writer, t.Cookie(c.Request.TLS != nil))
	if isHTMX(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func validationMessage(err *contact.ValidationError) string {
	if len(err.Missing) > 0 {
		labels := make([]string, 0, len(err.Missing))
		for _, name := range err.Missing {
			labels = append(labels, label(name))
		}
		return missingPrefix + strings.Join(labels, ", ")
	}
	return invalidEmail
}

func resetAfter(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

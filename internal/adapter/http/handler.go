package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notary-profile/internal/domain"
	"notary-profile/internal/usecase"
	"notary-profile/templates"
)

type Handler struct {
	processor *usecase.Processor
	exporter  *usecase.Exporter
	sink      usecase.ContactSink
	gatherer  prometheus.Gatherer
	logger    *slog.Logger
}

func NewHandler(p *usecase.Processor, e *usecase.Exporter, sink usecase.ContactSink, g prometheus.Gatherer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{processor: p, exporter: e, sink: sink, gatherer: g, logger: logger}
}

// NewApp returns a fiber app with every preview route registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(requestid.New())
	h.Register(app)
	return app
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Page)
	app.Get("/state", h.State)
	app.Post("/refresh", h.Refresh)
	app.Post("/contact", h.Contact)
	app.Get("/profile.json", h.ProfileJSON)
	app.Get("/profile.pdf", h.ProfilePDF)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if h.gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}
}

func (h *Handler) current(c *fiber.Ctx) (domain.ViewState, error) {
	return h.processor.Current(c.UserContext())
}

func (h *Handler) renderPage(c *fiber.Ctx, status int, s domain.ViewState, notice string) error {
	page := templates.NewPage(s, true)
	page.Notice = notice
	c.Status(status).Type("html", "utf-8")
	return templates.Render(c, page)
}

func wantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

func (h *Handler) Page(c *fiber.Ctx) error {
	s, err := h.current(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return h.renderPage(c, fiber.StatusOK, s, "")
}

func (h *Handler) State(c *fiber.Ctx) error {
	s, err := h.current(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(s)
}

// Refresh runs a user-triggered fetch cycle. Browsers are redirected back
// to the page; API clients get the resulting state.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	s, err := h.processor.Refresh(c.UserContext())
	if err != nil {
		h.logger.Error("refresh failed", "error", err, "request_id", c.GetRespHeader(fiber.HeaderXRequestID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if wantsJSON(c) {
		return c.JSON(s)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *Handler) Contact(c *fiber.Ctx) error {
	var form domain.ContactForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	s, err := h.current(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	receipt, err := usecase.SubmitContact(c.UserContext(), h.sink, s.Profile, form)
	status := fiber.StatusAccepted
	notice := "Message captured. E-mail delivery is not available."
	switch {
	case errors.Is(err, usecase.ErrInvalidContact):
		status, notice = fiber.StatusBadRequest, err.Error()
	case err != nil:
		h.logger.Error("contact capture failed", "error", err)
		status, notice = fiber.StatusInternalServerError, "Message could not be captured."
	}

	if wantsJSON(c) {
		if err != nil {
			return c.Status(status).JSON(fiber.Map{"error": notice})
		}
		return c.Status(status).JSON(receipt)
	}
	return h.renderPage(c, status, s, notice)
}

func (h *Handler) ProfileJSON(c *fiber.Ctx) error {
	s, err := h.current(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if s.Profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no profile loaded", "status": s.Status})
	}
	b, err := usecase.ProfileJSON(s)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Type("json", "utf-8")
	return c.Send(b)
}

func (h *Handler) ProfilePDF(c *fiber.Ctx) error {
	s, err := h.current(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if s.Profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no profile loaded", "status": s.Status})
	}
	pdf, err := h.exporter.PDF(c.UserContext(), s)
	if err != nil {
		h.logger.Error("pdf export failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `inline; filename="profile.pdf"`)
	c.Type("pdf")
	return c.Send(pdf)
}

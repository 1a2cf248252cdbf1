// internal/adapters/http/handlers.go
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/doorrush/internal/application"
	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

func (h *Handler) landing(c *gin.Context) {
	h.render(c, http.StatusOK, "landing", gin.H{
		"authenticated": h.Session.Snapshot().Authenticated(),
		"service_types": domain.ServiceTypes,
	})
}

func (h *Handler) loginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login", h.Session.Snapshot())
}

func (h *Handler) login(c *gin.Context) {
	if err := h.Session.Login(c.Request.Context(), c.PostForm("phone_number"), c.PostForm("password")); err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "login", h.Session.Snapshot())
}

func (h *Handler) registerPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register", gin.H{"locations": domain.Locations})
}

func (h *Handler) register(c *gin.Context) {
	req := application.RegisterRequest{
		FullName:    c.PostForm("full_name"),
		PhoneNumber: c.PostForm("phone_number"),
		Password:    c.PostForm("password"),
		Address:     c.PostForm("address"),
	}
	if fh, err := c.FormFile("profile_picture"); err == nil {
		f, err := fh.Open()
		if err != nil {
			h.fail(c, domain.NewPublicError(err, "could not read profile picture"))
			return
		}
		defer f.Close()
		req.Picture = &application.Upload{Name: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Body: f}
	}
	customer, err := h.Session.Register(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusCreated, "register", customer)
}

func (h *Handler) dashboard(c *gin.Context) {
	h.AgentList.Reload(c.Request.Context())
	h.render(c, http.StatusOK, "dashboard", gin.H{
		"customer": h.Session.Customer(),
		"agents":   h.AgentList.View(),
	})
}

func (h *Handler) placeOrderPage(c *gin.Context) {
	h.render(c, http.StatusOK, "place-order", h.orderForm(c))
}

func (h *Handler) orderForm(c *gin.Context) gin.H {
	data := gin.H{
		"workflow":      h.Workflow.View(),
		"service_types": domain.ServiceTypes,
		"locations":     domain.Locations,
	}
	if h.Workflow.View().Step == application.StepAgent {
		data["agents"] = h.Agents.FetchAgents(c.Request.Context())
	}
	return data
}

// placeOrder drives the order form one action at a time.
func (h *Handler) placeOrder(c *gin.Context) {
	ctx := c.Request.Context()
	switch c.PostForm("action") {
	case "details":
		h.Workflow.SetDetails(domain.ServiceType(c.PostForm("service_type")), c.PostForm("delivery_address"), c.PostForm("instructions"))
	case "next":
		if err := h.Workflow.Next(); err != nil {
			h.fail(c, err)
			return
		}
	case "back":
		h.Workflow.Back()
	case "select-agent":
		h.Workflow.SelectAgent(c.PostForm("agent_id"))
	case "auto-assign":
		on, _ := strconv.ParseBool(c.DefaultPostForm("enabled", "true"))
		h.Workflow.SetAutoAssign(on)
	case "submit":
		conf, err := h.Workflow.Submit(ctx)
		if err != nil {
			h.fail(c, err)
			return
		}
		h.render(c, http.StatusCreated, "order-confirmation", conf)
		return
	case "reset":
		h.Workflow.Reset()
	default:
		h.fail(c, domain.NewPublicError(nil, "unknown action"))
		return
	}
	h.render(c, http.StatusOK, "place-order", h.orderForm(c))
}

func (h *Handler) confirmation(c *gin.Context) {
	customer, ok := h.customer(c)
	if !ok {
		return
	}
	conf := h.Workflow.LastConfirmation()
	if conf == nil || !h.Orders.VerifyConfirmation(c.Request.Context(), customer.ID, conf.OrderID) {
		h.redirect(c, "/dashboard")
		return
	}
	h.render(c, http.StatusOK, "order-confirmation", conf)
}

func (h *Handler) history(c *gin.Context) {
	customer, ok := h.customer(c)
	if !ok {
		return
	}
	orders, err := h.Orders.History(c.Request.Context(), customer.ID)
	if err != nil {
		h.fail(c, domain.NewPublicError(err, "failed to load orders"))
		return
	}
	h.render(c, http.StatusOK, "order-history", gin.H{"orders": orders, "empty": len(orders) == 0})
}

func (h *Handler) orderDetail(c *gin.Context) {
	customer, ok := h.customer(c)
	if !ok {
		return
	}
	detail, err := h.Orders.Detail(c.Request.Context(), customer.ID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "order", gin.H{
		"detail":   detail,
		"messages": h.Messenger.GetOrderMessages(c.Request.Context(), detail.Order.ID),
	})
}

func (h *Handler) orderAction(c *gin.Context) {
	customer, ok := h.customer(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	detail, err := h.Orders.Detail(ctx, customer.ID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	switch c.PostForm("action") {
	case "message":
		if detail.Order.AgentID == "" {
			h.fail(c, domain.NewPublicError(nil, "no agent assigned to this order yet"))
			return
		}
		msg := h.Messenger.SendMessageToAgent(ctx, detail.Order.ID, detail.Order.AgentID, c.PostForm("message"))
		if msg == nil {
			h.fail(c, domain.NewPublicError(nil, "failed to send message"))
			return
		}
	case "tip":
		amount, err := decimal.NewFromString(c.PostForm("amount"))
		if err != nil {
			h.fail(c, domain.NewPublicError(err, "tip amount must be a number"))
			return
		}
		if err := h.Tips.SendTip(ctx, customer, detail.Order.ID, detail.Order.AgentID, amount); err != nil {
			h.fail(c, err)
			return
		}
	default:
		h.fail(c, domain.NewPublicError(nil, "unknown action"))
		return
	}
	h.render(c, http.StatusOK, "order", gin.H{
		"detail":   detail,
		"messages": h.Messenger.GetOrderMessages(ctx, detail.Order.ID),
	})
}

func (h *Handler) profile(c *gin.Context) {
	customer, ok := h.customer(c)
	if !ok {
		return
	}
	fresh, err := h.Profiles.Get(c.Request.Context(), customer.ID)
	if err != nil {
		h.Log.Error("http.profile", err, nil)
		fresh = customer
	}
	h.render(c, http.StatusOK, "profile", fresh)
}

func (h *Handler) profileAction(c *gin.Context) {
	ctx := c.Request.Context()
	if c.PostForm("action") == "logout" {
		h.Session.Logout(ctx)
		h.redirect(c, "/login")
		return
	}
	customer, ok := h.customer(c)
	if !ok {
		return
	}
	updated, err := h.Profiles.Update(ctx, customer, application.ProfileUpdate{
		FullName: c.PostForm("full_name"),
		Address:  c.PostForm("address"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Session.SetCustomer(ctx, updated)
	h.Effects.Toast(ports.ToastSuccess, "Profile updated")
	h.render(c, http.StatusOK, "profile", updated)
}

func (h *Handler) notifications(c *gin.Context) {
	h.render(c, http.StatusOK, "notifications", gin.H{"notifications": h.Effects.Notifications()})
}

func (h *Handler) preferences(c *gin.Context) {
	h.render(c, http.StatusOK, "notification-preferences", h.Preferences.Get())
}

func (h *Handler) savePreferences(c *gin.Context) {
	customer, ok := h.customer(c)
	if !ok {
		return
	}
	prefs := domain.NotificationPreferences{
		OrderUpdates:  formBool(c, "order_updates"),
		Promotions:    formBool(c, "promotions"),
		AgentAssigned: formBool(c, "agent_assigned"),
		Delivered:     formBool(c, "delivered"),
		Push:          formBool(c, "push"),
		Email:         formBool(c, "email"),
		SMS:           formBool(c, "sms"),
	}
	h.Preferences.Set(prefs)
	if err := h.Preferences.Save(c.Request.Context(), customer.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "notification-preferences", h.Preferences.Get())
}

// formBool treats a missing checkbox as off.
func formBool(c *gin.Context, key string) bool {
	on, _ := strconv.ParseBool(c.PostForm(key))
	return on || c.PostForm(key) == "on"
}

func (h *Handler) changePasswordPage(c *gin.Context) {
	h.render(c, http.StatusOK, "change-password", nil)
}

func (h *Handler) changePassword(c *gin.Context) {
	customer, ok := h.customer(c)
	if !ok {
		return
	}
	if c.PostForm("new_password") != c.PostForm("confirm_password") {
		h.fail(c, domain.NewPublicError(nil, "passwords do not match"))
		return
	}
	if err := h.Auth.ChangePassword(c.Request.Context(), customer, c.PostForm("current_password"), c.PostForm("new_password")); err != nil {
		h.fail(c, err)
		return
	}
	h.Effects.Toast(ports.ToastSuccess, "Password changed")
	h.Effects.Navigate("/profile")
	h.render(c, http.StatusOK, "change-password", nil)
}

func (h *Handler) feedbackPage(c *gin.Context) {
	h.render(c, http.StatusOK, "feedback", nil)
}

func (h *Handler) submitFeedback(c *gin.Context) {
	customer, ok := h.customer(c)
	if !ok {
		return
	}
	rating, _ := strconv.Atoi(c.PostForm("rating"))
	req := application.FeedbackRequest{
		Category: c.DefaultPostForm("category", "general"),
		Rating:   rating,
		Message:  c.PostForm("message"),
	}
	var (
		fb  *domain.Feedback
		err error
	)
	if c.PostForm("source") == "legacy" {
		fb, err = h.Feedback.Record(customer, req)
	} else {
		fb, err = h.Feedback.Submit(c.Request.Context(), customer, req)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Effects.Toast(ports.ToastSuccess, "Thanks for your feedback")
	h.render(c, http.StatusCreated, "feedback", fb)
}

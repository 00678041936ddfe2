package components

import (
	"github.com/nfrund/gstportal/internal/portal"
	"github.com/nfrund/gstportal/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Element ids targeted by htmx swaps.
const (
	PasswordFieldID = "password-field"
	SubmitAreaID    = "login-submit"
)

// pollInterval is how often a submitting form asks for the attempt's status.
const pollInterval = "every 500ms"

// EmailField renders the email input.
func EmailField(email string) g.Node {
	return h.Div(h.Class("field"),
		h.Label(h.For("email"), g.Text("Email Address")),
		h.Div(h.Class("field__control"),
			Icon("mail"),
			h.Input(
				h.ID("email"), h.Name("email"), h.Type("email"),
				h.Placeholder("Enter your email"),
				h.AutoComplete("email"),
				h.Value(email),
				h.Required(),
			),
		),
	)
}

// PasswordField renders the password input with its visibility toggle. The
// toggle posts the current value so no keystrokes are lost on swap.
func PasswordField(password string, visible bool) g.Node {
	inputType, toggleIcon, toggleLabel := "password", "eye", "Show password"
	if visible {
		inputType, toggleIcon, toggleLabel = "text", "eye-off", "Hide password"
	}
	return h.Div(h.ID(PasswordFieldID), h.Class("field"),
		h.Label(h.For("password"), g.Text("Password")),
		h.Div(h.Class("field__control"),
			Icon("lock"),
			h.Input(
				h.ID("password"), h.Name("password"), h.Type(inputType),
				h.Placeholder("Enter your password"),
				h.AutoComplete("current-password"),
				h.Value(password),
				h.Required(),
			),
			h.Button(
				h.Type("button"), h.Class("field__toggle"),
				h.Aria("label", toggleLabel),
				hx.Post(view.PathLoginVisibility),
				hx.Include("#password"),
				hx.Target("#"+PasswordFieldID),
				hx.Swap("outerHTML"),
				Icon(toggleIcon),
			),
		),
	)
}

// SubmitArea renders the inline error and the submit button. While an
// attempt is in flight the button shows a spinner and the area polls for the
// outcome.
func SubmitArea(form portal.LoginForm) g.Node {
	if form.Submitting {
		return h.Div(h.ID(SubmitAreaID),
			hx.Get(view.PathLoginStatus),
			hx.Trigger(pollInterval),
			hx.Swap("outerHTML"),
			h.Button(h.Type("submit"), h.Class("btn btn--primary"), h.Disabled(),
				h.Span(h.Class("spinner"), h.Aria("hidden", "true")),
				g.Text("Signing in..."),
			),
		)
	}
	return h.Div(h.ID(SubmitAreaID),
		g.If(form.Error != "", h.Div(h.Class("login__error"), h.Role("alert"), g.Text(form.Error))),
		h.Button(h.Type("submit"), h.Class("btn btn--primary"),
			g.Text("Sign In"),
			Icon("arrow-right"),
		),
	)
}

// LoginForm renders the whole form. Without JavaScript it is a plain POST;
// with htmx only the submit area is swapped.
func LoginForm(form portal.LoginForm) g.Node {
	return h.Form(
		h.Method("post"), h.Action(view.PathLogin),
		hx.Post(view.PathLogin),
		hx.Target("#"+SubmitAreaID),
		hx.Swap("outerHTML"),
		EmailField(form.Email),
		PasswordField(form.Password, form.PasswordVisible),
		h.Div(h.Class("login__row"),
			h.Label(h.Input(h.Type("checkbox"), h.Name("remember")), g.Text("Remember me")),
			h.A(h.Href("#"), g.Text("Forgot password?")),
		),
		SubmitArea(form),
		h.Div(h.Class("divider"), g.Text("New to GST Portal?")),
		h.Button(h.Type("button"), h.Class("btn btn--outline"), g.Text("Create Account")),
	)
}

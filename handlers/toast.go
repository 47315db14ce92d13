package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

// addTrigger merges one event into the HX-Trigger response header. An
// existing header that is not a JSON object is replaced.
func addTrigger(e *core.RequestEvent, event string, payload any) {
	events := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil || events == nil {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			events = map[string]any{}
		}
	}
	events[event] = payload

	data, err := json.Marshal(events)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// SetToast fires a showToast event on the client via HTMX. It also sets a
// flash cookie so toasts survive regular (non-HTMX) redirects.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	toast := map[string]string{"message": message, "type": toastType}
	addTrigger(e, "showToast", toast)

	cookieVal, err := json.Marshal(toast)
	if err == nil {
		http.SetCookie(e.Response, &http.Cookie{
			Name:     "flash_toast",
			Value:    url.QueryEscape(string(cookieVal)),
			Path:     "/",
			MaxAge:   10,
			HttpOnly: false, // JS needs to read it
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// SetRoomWarnings fires a roomWarnings event carrying the validation
// messages of a saved room, plus a warning toast. Nothing is set when
// there are no warnings.
func SetRoomWarnings(e *core.RequestEvent, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	addTrigger(e, "roomWarnings", warnings)
	if len(warnings) == 1 {
		SetToast(e, "warning", warnings[0])
		return
	}
	SetToast(e, "warning", fmt.Sprintf("%d Hinweise zur Eingabe", len(warnings)))
}

// ErrorToast sets an error toast and prevents HTMX from swapping the error text into the DOM.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}

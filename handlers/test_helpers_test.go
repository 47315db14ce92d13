package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"raumbuch/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newRaumbuchFixture creates a location priced at 12/15 per hour and a
// building with two rooms:
//
//	Büro    EG     Unterhalt  50 m² / 100 per hour  -> 125,00 € net per month
//	Sanitär 1. OG  Sanitär    20 m² /  50 per hour  -> 100,00 € net per month
func newRaumbuchFixture(t *testing.T) (*pocketbase.PocketBase, *core.Record) {
	t.Helper()

	app := testhelpers.NewTestApp(t)
	loc := testhelpers.CreateTestLocation(t, app, "Standort Mitte", 12, 15)
	building := testhelpers.CreateTestBuilding(t, app, "Testhaus Mitte", loc.Id)
	testhelpers.CreateTestRoom(t, app, building.Id, testhelpers.Room("Büro", "EG", "Unterhalt", 50, 100))
	testhelpers.CreateTestRoom(t, app, building.Id, testhelpers.Room("Sanitär", "1. OG", "Sanitär", 20, 50))
	return app, building
}

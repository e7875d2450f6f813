// file: internals/features/finance/invoices/route/user_route_test.go
package route

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// newAdminAPI memasang InvoiceAdminRoutes di belakang stub auth yang
// hanya menaruh role di locals, seperti yang dilakukan AuthMiddleware.
func newAdminAPI(role string) *fiber.App {
	app := fiber.New()
	api := app.Group("/api/a", func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		return c.Next()
	})
	InvoiceAdminRoutes(api, nil)
	return app
}

func TestRecurringOperationsRequireAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		role       string
		path       string
		wantStatus int
	}{
		{
			name:       "manager ditolak generate",
			role:       "manager",
			path:       "/api/a/invoices/recurring/generate",
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "member ditolak generate",
			role:       "member",
			path:       "/api/a/invoices/recurring/generate",
			wantStatus: fiber.StatusForbidden,
		},
		{
			// admin melewati gate; payload kosong lalu ditolak 400,
			// bukti request sampai ke handler
			name:       "admin lolos gate generate",
			role:       "admin",
			path:       "/api/a/invoices/recurring/generate",
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "manager ditolak toggle",
			role:       "manager",
			path:       "/api/a/invoices/bukan-uuid/recurring/toggle",
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "admin lolos gate toggle",
			role:       "admin",
			path:       "/api/a/invoices/bukan-uuid/recurring/toggle",
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			app := newAdminAPI(tc.role)
			req := httptest.NewRequest(fiber.MethodPost, tc.path, nil)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}

package entities

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

// registry holds the configuration for every admin table. Adding a table is
// adding an entry here; the engine itself never changes.
var registry = map[string]Config{
	"users": {
		Name:       "users",
		Title:      "Users",
		Path:       "/api/users",
		ArrayField: "users",
		DateField:  "createdAt",
		Statuses:   []string{models.StatusActive, models.StatusSuspended},
		Actions: map[string]ActionSpec{
			"suspend":    {Method: http.MethodPost, Suffix: "/suspend", From: []string{models.StatusActive}},
			"reactivate": {Method: http.MethodPost, Suffix: "/reactivate", From: []string{models.StatusSuspended}},
			"delete":     deleteSpec,
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "Name", Value: "name"},
			{Label: "Email", Value: "email"},
			{Label: "Status", Value: "status"},
			{Label: "Registered", Value: "createdAt"},
		},
	},
	"bookings": {
		Name:       "bookings",
		Title:      "Bookings",
		Path:       "/api/bookings",
		ArrayField: "bookings",
		DateField:  "createdAt",
		Statuses: []string{
			models.StatusPending, models.StatusCompleted,
			models.StatusCancelled, models.StatusDisputed,
		},
		Actions: map[string]ActionSpec{
			"cancel":   {Method: http.MethodPost, Suffix: "/cancel", From: []string{models.StatusPending}},
			"complete": {Method: http.MethodPost, Suffix: "/complete", From: []string{models.StatusPending}},
			"resolve":  {Method: http.MethodPost, Suffix: "/resolve", From: []string{models.StatusDisputed}},
			"delete":   deleteSpec,
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "User", Value: "userName"},
			{Label: "Provider", Value: "providerName"},
			{Label: "Service", Value: "service"},
			{Label: "Status", Value: "status"},
			{Label: "Amount", Value: "totalAmount"},
			{Label: "Created", Value: "createdAt"},
		},
	},
	"transactions": {
		Name:       "transactions",
		Title:      "Transactions",
		Path:       "/api/transactions",
		ArrayField: "transactions",
		DateField:  "createdAt",
		Statuses: []string{
			models.StatusPending, models.StatusCompleted,
			models.StatusFailed, models.StatusDisputed,
		},
		Actions: map[string]ActionSpec{
			"flag": {Method: http.MethodPost, Suffix: "/flag"},
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "Booking", Value: "bookingId"},
			{Label: "Amount", Value: "amount"},
			{Label: "Currency", Value: "currency"},
			{Label: "Status", Value: "status"},
			{Label: "Created", Value: "createdAt"},
		},
	},
	"reviews": {
		Name:       "reviews",
		Title:      "Reviews",
		Path:       "/api/reviews",
		ArrayField: "reviews",
		DateField:  "createdAt",
		Statuses: []string{
			models.StatusPending, models.StatusApproved,
			models.StatusRejected, models.StatusFlagged,
		},
		Actions: map[string]ActionSpec{
			"approve": {Method: http.MethodPost, Suffix: "/approve", From: []string{models.StatusPending, models.StatusFlagged}},
			"reject":  {Method: http.MethodPost, Suffix: "/reject", From: []string{models.StatusPending, models.StatusFlagged}},
			"delete":  deleteSpec,
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "Author", Value: "userName"},
			{Label: "Provider", Value: "providerName"},
			{Label: "Rating", Value: "rating"},
			{Label: "Status", Value: "status"},
			{Label: "Created", Value: "createdAt"},
		},
	},
	"announcements": {
		Name:            "announcements",
		Title:           "Announcements",
		Path:            "/api/announcements",
		ArrayField:      "announcements",
		DateField:       "publishedDate",
		Statuses:        []string{models.StatusDraft, models.StatusPublished, models.StatusArchived},
		ExclusiveStatus: true,
		Actions: map[string]ActionSpec{
			"publish":   {Method: http.MethodPost, Suffix: "/publish", From: []string{models.StatusDraft, models.StatusArchived}},
			"unpublish": {Method: http.MethodPost, Suffix: "/unpublish", From: []string{models.StatusPublished}},
			"archive":   {Method: http.MethodPost, Suffix: "/archive", From: []string{models.StatusPublished, models.StatusDraft}},
			"delete":    deleteSpec,
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "Title", Value: "title"},
			{Label: "Status", Value: "status"},
			{Label: "Published", Value: "publishedDate"},
		},
	},
	"articles": {
		Name:            "articles",
		Title:           "Articles",
		Path:            "/api/articles",
		ArrayField:      "articles",
		DateField:       "publishedDate",
		Statuses:        []string{models.StatusDraft, models.StatusPublished, models.StatusArchived},
		ExclusiveStatus: true,
		Actions: map[string]ActionSpec{
			"publish":   {Method: http.MethodPost, Suffix: "/publish", From: []string{models.StatusDraft, models.StatusArchived}},
			"unpublish": {Method: http.MethodPost, Suffix: "/unpublish", From: []string{models.StatusPublished}},
			"archive":   {Method: http.MethodPost, Suffix: "/archive", From: []string{models.StatusPublished, models.StatusDraft}},
			"feature":   {Method: http.MethodPost, Suffix: "/feature", From: []string{models.StatusPublished}},
			"unfeature": {Method: http.MethodPost, Suffix: "/unfeature", From: []string{models.StatusPublished}},
			"delete":    deleteSpec,
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "Title", Value: "title"},
			{Label: "Author", Value: "author"},
			{Label: "Status", Value: "status"},
			{Label: "Published", Value: "publishedDate"},
		},
	},
	"products": {
		Name:       "products",
		Title:      "Products",
		Path:       "/api/products",
		ArrayField: "products",
		DateField:  "createdAt",
		Statuses:   []string{models.StatusPending, models.StatusApproved, models.StatusRejected},
		Actions: map[string]ActionSpec{
			"approve":          {Method: http.MethodPost, Suffix: "/approve", From: []string{models.StatusPending}},
			"reject":           {Method: http.MethodPost, Suffix: "/reject", From: []string{models.StatusPending}},
			"request-revision": {Method: http.MethodPost, Suffix: "/request-revision", From: []string{models.StatusPending}},
			"feature":          {Method: http.MethodPost, Suffix: "/feature", From: []string{models.StatusApproved}},
			"unfeature":        {Method: http.MethodPost, Suffix: "/unfeature", From: []string{models.StatusApproved}},
			"delete":           deleteSpec,
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "Name", Value: "name"},
			{Label: "Provider", Value: "providerName"},
			{Label: "Price", Value: "price"},
			{Label: "Status", Value: "status"},
			{Label: "Created", Value: "createdAt"},
		},
	},
	"settlements": {
		Name:       "settlements",
		Title:      "Settlements",
		Path:       "/api/settlements",
		ArrayField: "settlements",
		DateField:  "requestedAt",
		Statuses:   []string{models.StatusPending, models.StatusApproved, models.StatusRejected},
		Actions: map[string]ActionSpec{
			"approve": {Method: http.MethodPost, Suffix: "/approve", From: []string{models.StatusPending}},
			"reject":  {Method: http.MethodPost, Suffix: "/reject", From: []string{models.StatusPending}},
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "Provider", Value: "providerName"},
			{Label: "Amount", Value: "amount"},
			{Label: "Status", Value: "status"},
			{Label: "Requested", Value: "requestedAt"},
		},
	},
	"kyc": {
		Name:       "kyc",
		Title:      "KYC Submissions",
		Path:       "/api/kyc",
		ArrayField: "submissions",
		DateField:  "requestedAt",
		Statuses:   []string{models.StatusPending, models.StatusApproved, models.StatusRejected},
		Actions: map[string]ActionSpec{
			"approve":          {Method: http.MethodPost, Suffix: "/approve", From: []string{models.StatusPending}},
			"reject":           {Method: http.MethodPost, Suffix: "/reject", From: []string{models.StatusPending}},
			"request-revision": {Method: http.MethodPost, Suffix: "/request-revision", From: []string{models.StatusPending}},
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "User", Value: "userName"},
			{Label: "Document", Value: "documentType"},
			{Label: "Status", Value: "status"},
			{Label: "Requested", Value: "requestedAt"},
		},
	},
	"broadcasts": {
		Name:            "broadcasts",
		Title:           "Broadcasts",
		Path:            "/api/broadcasts",
		ArrayField:      "broadcasts",
		DateField:       "createdAt",
		ExclusiveStatus: true,
		Statuses: []string{
			models.StatusDraft, models.StatusScheduled, models.StatusSending,
			models.StatusSent, models.StatusFailed, models.StatusCancelled,
		},
		Actions: map[string]ActionSpec{
			"schedule": {Method: http.MethodPost, Suffix: "/schedule", From: []string{models.StatusDraft}},
			"send":     {Method: http.MethodPost, Suffix: "/send", From: []string{models.StatusDraft, models.StatusScheduled}},
			"cancel":   {Method: http.MethodPost, Suffix: "/cancel", From: []string{models.StatusScheduled, models.StatusSending}},
			"delete":   deleteSpec,
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "Title", Value: "title"},
			{Label: "Audience", Value: "audience"},
			{Label: "Status", Value: "status"},
			{Label: "Created", Value: "createdAt"},
		},
	},
	"admins": {
		Name:       "admins",
		Title:      "Admins",
		Path:       "/api/admins",
		ArrayField: "admins",
		DateField:  "createdAt",
		Statuses:   []string{models.StatusActive, models.StatusSuspended},
		Actions: map[string]ActionSpec{
			"suspend":    {Method: http.MethodPost, Suffix: "/suspend", From: []string{models.StatusActive}},
			"reactivate": {Method: http.MethodPost, Suffix: "/reactivate", From: []string{models.StatusSuspended}},
			"delete":     deleteSpec,
		},
		ExportFields: []FieldOption{
			{Label: "ID", Value: "id"},
			{Label: "Name", Value: "name"},
			{Label: "Email", Value: "email"},
			{Label: "Role", Value: "role"},
			{Label: "Status", Value: "status"},
		},
	},
}

// Get resolves an entity configuration by name.
func Get(name string) (Config, error) {
	cfg, ok := registry[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown entity %q", name)
	}
	return cfg, nil
}

// Names returns every registered entity name sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

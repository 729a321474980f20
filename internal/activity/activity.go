// Package activity derives display categories for activity log entries.
package activity

import (
	"strings"

	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/models"
)

// Category is the chip shown next to an activity
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Categories
var (
	Create       = Category{Name: "Create", Color: "green"}
	Update       = Category{Name: "Update", Color: "blue"}
	Delete       = Category{Name: "Delete", Color: "red"}
	Payment      = Category{Name: "Payment", Color: "purple"}
	Auth         = Category{Name: "Auth", Color: "grey"}
	ImportExport = Category{Name: "Import/Export", Color: "orange"}
	Other        = Category{Name: "Other", Color: "default"}
)

// checked in order, most specific first
var rules = []struct {
	category Category
	words    []string
}{
	{ImportExport, []string{"import", "export", "upload", "download"}},
	{Payment, []string{"payment", "paid", "checkout", "receipt", "installment"}},
	{Auth, []string{"login", "logout", "log in", "log out", "sign in", "sign out", "password", "auth"}},
	{Delete, []string{"delete", "remove", "deactivat"}},
	{Update, []string{"update", "edit", "change", "modif"}},
	{Create, []string{"create", "add", "register", "new "}},
}

// Categorize derives the category of an entry from its action, then its type
func Categorize(e models.ActivityLogEntry) Category {
	for _, text := range []string{e.Action, e.Type} {
		t := strings.ToLower(text)
		if t == "" {
			continue
		}
		for _, r := range rules {
			for _, w := range r.words {
				if strings.Contains(t, w) {
					return r.category
				}
			}
		}
	}
	return Other
}

// Entry is an activity log row with its category
type Entry struct {
	models.ActivityLogEntry
	Category Category `json:"category"`
}

// Decorate categorizes every entry
func Decorate(entries []models.ActivityLogEntry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, Entry{ActivityLogEntry: e, Category: Categorize(e)})
	}
	return out
}

// Columns is how the activity log page searches and sorts
var Columns = listview.Columns[Entry]{
	Search: func(e Entry) []string {
		return []string{e.Action, e.Type, e.Details, e.User, e.Category.Name, listview.FormatDate(&e.Timestamp)}
	},
	Keys: map[string]func(Entry) interface{}{
		"timestamp": func(e Entry) interface{} { return listview.Date(&e.Timestamp) },
		"action":    func(e Entry) interface{} { return listview.Text(e.Action) },
		"type":      func(e Entry) interface{} { return listview.Text(e.Type) },
		"user":      func(e Entry) interface{} { return listview.Text(e.User) },
		"category":  func(e Entry) interface{} { return listview.Text(e.Category.Name) },
	},
}

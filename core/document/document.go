// Package document lists the student's application documents by folder.
package document

import (
	"errors"
	"sort"
	"strings"

	"github.com/trezcool/collegecompass/core"
)

type Type string

const (
	TypeEssay          Type = "essay"
	TypeRecommendation Type = "recommendation"
	TypeTranscript     Type = "transcript"
	TypeResume         Type = "resume"
	TypePhoto          Type = "photo"
	TypeSpreadsheet    Type = "spreadsheet"
	TypeOther          Type = "other"
)

type Document struct {
	ID        int       `json:"id" validate:"gt=0"`
	Name      string    `json:"name" validate:"notblank"`
	Type      Type      `json:"type" validate:"oneof=essay recommendation transcript resume photo spreadsheet other"`
	College   string    `json:"college,omitempty"`
	DateAdded core.Date `json:"dateAdded"`
	Size      string    `json:"size"`
	Shared    bool      `json:"shared"`
}

type Folder struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Folders in display order.
var Folders = []Folder{
	{Name: "Essays", Type: TypeEssay},
	{Name: "Recommendations", Type: TypeRecommendation},
	{Name: "Transcripts", Type: TypeTranscript},
	{Name: "Activity Lists", Type: TypeResume},
	{Name: "Photos", Type: TypePhoto},
	{Name: "Financial", Type: TypeSpreadsheet},
	{Name: "Miscellaneous", Type: TypeOther},
}

var (
	// errors
	errUnknownFolder = errors.New("unknown folder")
	errInvalidQuery  = errors.New("invalid document query")

	orderingFields = map[string]func(a, b Document) bool{
		"name":       func(a, b Document) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
		"date_added": func(a, b Document) bool { return a.DateAdded.Before(b.DateAdded.Time) },
	}
)

// FolderType returns the document type held by the named folder, ignoring case.
func FolderType(name string) (Type, bool) {
	for _, f := range Folders {
		if strings.EqualFold(f.Name, name) {
			return f.Type, true
		}
	}
	return "", false
}

type QueryFilter struct {
	Folder   string `query:"folder"`
	Search   string `query:"search"`
	Ordering string `query:"ordering"`
}

type (
	Repository interface {
		QueryAllDocuments() ([]Document, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Folders() []Folder {
	return Folders
}

// List filters by folder and case-insensitive name search, then orders by the requested fields.
func (svc *Service) List(f QueryFilter) ([]Document, error) {
	var (
		folderType Type
		flds       []core.FieldError
	)
	if folder := core.CleanString(f.Folder); folder != "" {
		var ok bool
		if folderType, ok = FolderType(folder); !ok {
			flds = append(flds, core.FieldError{Field: "folder", Error: errUnknownFolder.Error()})
		}
	}
	orderings := core.ParseOrdering(f.Ordering)
	for _, ord := range orderings {
		if _, ok := orderingFields[ord.Field]; !ok {
			flds = append(flds, core.FieldError{Field: "ordering", Error: "cannot order by " + ord.Field})
		}
	}
	if len(flds) > 0 {
		return nil, core.NewValidationError(errInvalidQuery, flds...)
	}

	all, err := svc.repo.QueryAllDocuments()
	if err != nil {
		return nil, err
	}
	search := core.CleanString(f.Search)
	docs := make([]Document, 0, len(all))
	for _, doc := range all {
		if folderType != "" && doc.Type != folderType {
			continue
		}
		if search != "" && !core.ContainsFold(doc.Name, search) {
			continue
		}
		docs = append(docs, doc)
	}
	Order(docs, orderings)
	return docs, nil
}

// Order sorts docs in place by orderings, earlier orderings taking precedence.
// Unknown fields are ignored.
func Order(docs []Document, orderings []core.Ordering) {
	if len(orderings) == 0 {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		for _, ord := range orderings {
			less, ok := orderingFields[ord.Field]
			if !ok {
				continue
			}
			a, b := docs[i], docs[j]
			if !ord.Ascending {
				a, b = b, a
			}
			if less(a, b) {
				return true
			}
			if less(b, a) {
				return false
			}
		}
		return false
	})
}

// Package badge maps every categorical tag shown by the pages to its display attributes.
package badge

import "strings"

type Kind string

const (
	KindCategory     Kind = "category"     // reach | target | safety
	KindStatus       Kind = "status"       // application status
	KindTaskType     Kind = "taskType"     // task type
	KindEventType    Kind = "eventType"    // calendar event type
	KindResourceType Kind = "resourceType" // resource type
	KindActivity     Kind = "activity"     // profile activity category
	KindCourseType   Kind = "courseType"   // AP | Honors | Regular
)

type Badge struct {
	Label      string `json:"label"`
	Background string `json:"bg,omitempty"`
	Text       string `json:"text"`
	Border     string `json:"border,omitempty"`
}

var neutral = Badge{Background: "bg-gray-100", Text: "text-gray-800"}

var badges = map[Kind]map[string]Badge{
	KindCategory: {
		"reach":  {Label: "Reach", Background: "bg-red-100", Text: "text-red-800"},
		"target": {Label: "Target", Background: "bg-yellow-100", Text: "text-yellow-800"},
		"safety": {Label: "Safety", Background: "bg-green-100", Text: "text-green-800"},
	},
	KindStatus: {
		"not_started": {Label: "Not Started", Background: "bg-gray-100", Text: "text-gray-800"},
		"in_progress": {Label: "In Progress", Background: "bg-blue-100", Text: "text-blue-800"},
		"submitted":   {Label: "Submitted", Background: "bg-yellow-100", Text: "text-yellow-800"},
		"complete":    {Label: "Complete", Background: "bg-green-100", Text: "text-green-800"},
	},
	KindTaskType: {
		"essay":          {Label: "Essay", Background: "bg-blue-100", Text: "text-blue-800"},
		"recommendation": {Label: "Recommendation", Background: "bg-purple-100", Text: "text-purple-800"},
		"application":    {Label: "Application", Background: "bg-green-100", Text: "text-green-800"},
		"interview":      {Label: "Interview", Background: "bg-yellow-100", Text: "text-yellow-800"},
		"documentation":  {Label: "Documentation", Background: "bg-red-100", Text: "text-red-800"},
	},
	KindEventType: {
		"deadline":  {Label: "Deadline", Background: "bg-red-100", Text: "text-red-800", Border: "border-red-200"},
		"meeting":   {Label: "Meeting", Background: "bg-blue-100", Text: "text-blue-800", Border: "border-blue-200"},
		"tour":      {Label: "Tour", Background: "bg-purple-100", Text: "text-purple-800", Border: "border-purple-200"},
		"interview": {Label: "Interview", Background: "bg-yellow-100", Text: "text-yellow-800", Border: "border-yellow-200"},
		"test":      {Label: "Test", Background: "bg-green-100", Text: "text-green-800", Border: "border-green-200"},
	},
	KindResourceType: {
		"article":   {Label: "Article", Background: "bg-blue-100", Text: "text-blue-800"},
		"guide":     {Label: "Guide", Background: "bg-purple-100", Text: "text-purple-800"},
		"video":     {Label: "Video", Background: "bg-red-100", Text: "text-red-800"},
		"webinar":   {Label: "Webinar", Background: "bg-green-100", Text: "text-green-800"},
		"checklist": {Label: "Checklist", Background: "bg-yellow-100", Text: "text-yellow-800"},
	},
	KindActivity: {
		"leadership": {Label: "Leadership", Text: "text-purple-500"},
		"community":  {Label: "Community", Text: "text-green-500"},
		"academic":   {Label: "Academic", Text: "text-blue-500"},
		"work":       {Label: "Work", Text: "text-yellow-500"},
		"arts":       {Label: "Arts", Text: "text-pink-500"},
		"sports":     {Label: "Sports", Text: "text-red-500"},
	},
	KindCourseType: {
		"AP":      {Label: "AP", Text: "text-red-500"},
		"Honors":  {Label: "Honors", Text: "text-purple-500"},
		"Regular": {Label: "Regular", Text: "text-blue-500"},
	},
}

// For returns the display attributes of tag.
// Unknown tags get neutral colours and a label derived from the tag itself.
func For(kind Kind, tag string) Badge {
	if b, ok := badges[kind][tag]; ok {
		return b
	}
	b := neutral
	b.Label = labelize(tag)
	return b
}

// Known reports whether tag has its own display attributes.
func Known(kind Kind, tag string) bool {
	_, ok := badges[kind][tag]
	return ok
}

func labelize(tag string) string {
	words := strings.FieldsFunc(tag, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

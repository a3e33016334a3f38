package adopt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/five82/pawprint/internal/paging"
)

// Shape names the wire format a pet listing arrived in.
type Shape string

const (
	// ShapeEnvelope is the canonical {data, page, size, total, totalPages} form.
	ShapeEnvelope Shape = "envelope"
	// ShapeContent is the legacy {content, number, size, totalElements, totalPages} form.
	ShapeContent Shape = "content"
	// ShapeArray is the legacy bare-array form.
	ShapeArray Shape = "array"
)

// ParseShape accepts the names used by ShapeEnvelope, ShapeContent and ShapeArray.
func ParseShape(value string) (Shape, bool) {
	switch Shape(value) {
	case ShapeEnvelope, ShapeContent, ShapeArray:
		return Shape(value), true
	case "":
		return ShapeEnvelope, true
	default:
		return "", false
	}
}

// Page is the canonical pagination result every listing is normalized into.
type Page struct {
	Items      []Pet
	Number     int
	Size       int
	Total      int
	TotalPages int
	Shape      Shape
}

// Empty reports whether the page holds no pets.
func (p Page) Empty() bool {
	return len(p.Items) == 0
}

// ShapeError reports a listing body that matches none of the known shapes.
type ShapeError struct {
	Reason string
	Body   string
}

func (e *ShapeError) Error() string {
	if e.Body == "" {
		return "unrecognized pet listing shape: " + e.Reason
	}
	return fmt.Sprintf("unrecognized pet listing shape: %s (body %s)", e.Reason, e.Body)
}

type envelopePage struct {
	Data       []Pet `json:"data"`
	Page       *int  `json:"page"`
	Size       *int  `json:"size"`
	Total      *int  `json:"total"`
	TotalPages *int  `json:"totalPages"`
}

type contentPage struct {
	Content       []Pet `json:"content"`
	Number        *int  `json:"number"`
	Size          *int  `json:"size"`
	TotalElements *int  `json:"totalElements"`
	TotalPages    *int  `json:"totalPages"`
}

// DefaultPageSize is the page size assumed when neither the response nor
// the request carries one.
const DefaultPageSize = 10

// DecodePage normalizes a pet listing body into a Page. q is the request the
// body answers. It supplies the page size when the response omits one, and
// pages a bare array, which holds the whole matching list.
func DecodePage(body []byte, q PetQuery) (Page, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Page{}, &ShapeError{Reason: "empty body"}
	}

	switch trimmed[0] {
	case '[':
		var items []Pet
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Page{}, fmt.Errorf("decode pet array: %w", err)
		}
		return arrayPage(items, q), nil
	case '{':
	default:
		return Page{}, &ShapeError{Reason: "not a JSON array or object", Body: excerpt(trimmed)}
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &keys); err != nil {
		return Page{}, fmt.Errorf("decode pet listing: %w", err)
	}

	switch {
	case isArray(keys["data"]):
		var env envelopePage
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return Page{}, fmt.Errorf("decode pet envelope: %w", err)
		}
		return normalize(env.Data, pageMeta{env.Page, env.Size, env.Total, env.TotalPages}, q, ShapeEnvelope, trimmed)
	case isArray(keys["content"]):
		var legacy contentPage
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return Page{}, fmt.Errorf("decode pet content page: %w", err)
		}
		return normalize(legacy.Content, pageMeta{legacy.Number, legacy.Size, legacy.TotalElements, legacy.TotalPages}, q, ShapeContent, trimmed)
	case keys["data"] != nil:
		return Page{}, &ShapeError{Reason: `"data" is not an array`, Body: excerpt(trimmed)}
	case keys["content"] != nil:
		return Page{}, &ShapeError{Reason: `"content" is not an array`, Body: excerpt(trimmed)}
	default:
		return Page{}, &ShapeError{Reason: `object has neither "data" nor "content"`, Body: excerpt(trimmed)}
	}
}

// EncodePage renders a page in the requested wire shape.
func EncodePage(page Page, shape Shape) any {
	items := page.Items
	if items == nil {
		items = []Pet{}
	}
	switch shape {
	case ShapeArray:
		return items
	case ShapeContent:
		return map[string]any{
			"content":       items,
			"number":        page.Number,
			"size":          page.Size,
			"totalElements": page.Total,
			"totalPages":    page.TotalPages,
			"first":         page.Number == 0,
			"last":          page.TotalPages == 0 || page.Number >= page.TotalPages-1,
		}
	default:
		return map[string]any{
			"data":       items,
			"page":       page.Number,
			"size":       page.Size,
			"total":      page.Total,
			"totalPages": page.TotalPages,
		}
	}
}

// TotalPages returns ceil(total/size), or zero when size is not positive.
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// pageMeta is the pagination metadata of an object listing. Nil fields were
// absent from the body.
type pageMeta struct {
	number, size, total, totalPages *int
}

func requestedSize(q PetQuery) int {
	if q.Size > 0 {
		return q.Size
	}
	return DefaultPageSize
}

// normalize fills in missing metadata. A response size wins; without one the
// server's totalPages is kept and the size falls back to the request.
func normalize(items []Pet, meta pageMeta, q PetQuery, shape Shape, body []byte) (Page, error) {
	page := Page{Items: items, Shape: shape, Total: len(items), Size: requestedSize(q)}
	if meta.number != nil && *meta.number > 0 {
		page.Number = *meta.number
	}
	if meta.total != nil && *meta.total >= len(items) {
		page.Total = *meta.total
	}

	switch {
	case meta.size != nil && *meta.size > 0:
		page.Size = *meta.size
		page.TotalPages = TotalPages(page.Total, page.Size)
	case meta.totalPages != nil && *meta.totalPages > 0:
		page.TotalPages = *meta.totalPages
	default:
		page.TotalPages = TotalPages(page.Total, page.Size)
	}

	if page.Total > 0 && page.TotalPages == 0 {
		return Page{}, &ShapeError{Reason: "listing has pets but no pages", Body: excerpt(body)}
	}
	return page, nil
}

// arrayPage pages a bare array locally. Requests past the end land on the
// last page.
func arrayPage(all []Pet, q PetQuery) Page {
	size := requestedSize(q)
	total := len(all)
	totalPages := TotalPages(total, size)
	number := max(q.Page, 0)
	if totalPages > 0 && number >= totalPages {
		number = totalPages - 1
	}
	items := paging.Slice(all, number, size)
	if items == nil {
		items = []Pet{}
	}
	return Page{
		Items:      items,
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		Shape:      ShapeArray,
	}
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func excerpt(body []byte) string {
	const limit = 80
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "…"
}

package adopt

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodePage_KnownShapes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		query PetQuery
		want  Page
		items int
	}{
		{
			name:  "envelope",
			body:  `{"data":[{"name":"a"},{"name":"b"}],"page":2,"size":2,"total":7,"totalPages":4}`,
			want:  Page{Number: 2, Size: 2, Total: 7, TotalPages: 4, Shape: ShapeEnvelope},
			items: 2,
		},
		{
			name:  "content",
			body:  `{"content":[{"name":"a"}],"number":0,"size":10,"totalElements":1,"totalPages":1,"first":true}`,
			want:  Page{Number: 0, Size: 10, Total: 1, TotalPages: 1, Shape: ShapeContent},
			items: 1,
		},
		{
			name:  "bare array",
			body:  ` [{"name":"a"},{"name":"b"},{"name":"c"}] `,
			want:  Page{Number: 0, Size: DefaultPageSize, Total: 3, TotalPages: 1, Shape: ShapeArray},
			items: 3,
		},
		{
			name:  "bare array is paged locally",
			body:  `[{"name":"a"},{"name":"b"},{"name":"c"},{"name":"d"},{"name":"e"}]`,
			query: PetQuery{Page: 1, Size: 2},
			want:  Page{Number: 1, Size: 2, Total: 5, TotalPages: 3, Shape: ShapeArray},
			items: 2,
		},
		{
			name:  "bare array past the end lands on the last page",
			body:  `[{"name":"a"},{"name":"b"},{"name":"c"}]`,
			query: PetQuery{Page: 7, Size: 2},
			want:  Page{Number: 1, Size: 2, Total: 3, TotalPages: 2, Shape: ShapeArray},
			items: 1,
		},
		{
			name:  "empty array",
			body:  `[]`,
			want:  Page{Size: DefaultPageSize, Shape: ShapeArray},
			items: 0,
		},
		{
			name:  "envelope missing metadata derives it",
			body:  `{"data":[{"name":"a"},{"name":"b"}]}`,
			want:  Page{Number: 0, Size: DefaultPageSize, Total: 2, TotalPages: 1, Shape: ShapeEnvelope},
			items: 2,
		},
		{
			name:  "envelope without size uses the requested size",
			body:  `{"data":[],"page":3,"total":20}`,
			query: PetQuery{Page: 3, Size: 5},
			want:  Page{Number: 3, Size: 5, Total: 20, TotalPages: 4, Shape: ShapeEnvelope},
			items: 0,
		},
		{
			name:  "envelope without size or request falls back to the default size",
			body:  `{"data":[],"page":3,"total":20}`,
			want:  Page{Number: 3, Size: DefaultPageSize, Total: 20, TotalPages: 2, Shape: ShapeEnvelope},
			items: 0,
		},
		{
			name:  "content without size uses the requested size",
			body:  `{"content":[],"number":3,"totalElements":20}`,
			query: PetQuery{Page: 3, Size: 5},
			want:  Page{Number: 3, Size: 5, Total: 20, TotalPages: 4, Shape: ShapeContent},
			items: 0,
		},
		{
			name:  "one item does not become the page size",
			body:  `{"data":[{"id":"a"}],"total":20}`,
			query: PetQuery{Size: 10},
			want:  Page{Number: 0, Size: 10, Total: 20, TotalPages: 2, Shape: ShapeEnvelope},
			items: 1,
		},
		{
			name:  "server totalPages is kept when size is missing",
			body:  `{"data":[{"id":"a"}],"total":20,"totalPages":4}`,
			query: PetQuery{Size: 10},
			want:  Page{Number: 0, Size: 10, Total: 20, TotalPages: 4, Shape: ShapeEnvelope},
			items: 1,
		},
		{
			name:  "server totalPages is recomputed",
			body:  `{"data":[{"name":"a"}],"page":0,"size":10,"total":25,"totalPages":99}`,
			want:  Page{Number: 0, Size: 10, Total: 25, TotalPages: 3, Shape: ShapeEnvelope},
			items: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePage([]byte(tt.body), tt.query)
			if err != nil {
				t.Fatalf("DecodePage returned error: %v", err)
			}
			if len(got.Items) != tt.items {
				t.Fatalf("len(Items) = %d, want %d", len(got.Items), tt.items)
			}
			if got.Total > 0 && got.TotalPages == 0 {
				t.Fatalf("Total %d with zero pages", got.Total)
			}
			got.Items = nil
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("DecodePage mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodePage_RejectsUnknownShapes(t *testing.T) {
	bodies := []string{
		``,
		`"hello"`,
		`42`,
		`{}`,
		`{"items":[]}`,
		`{"data":{"name":"a"}}`,
		`{"data":null}`,
		`{"content":"nope"}`,
	}
	for _, body := range bodies {
		_, err := DecodePage([]byte(body), PetQuery{})
		var shapeErr *ShapeError
		if !errors.As(err, &shapeErr) {
			t.Fatalf("DecodePage(%q) error = %v, want *ShapeError", body, err)
		}
	}
}

func TestDecodePage_MalformedJSONIsNotShapeError(t *testing.T) {
	_, err := DecodePage([]byte(`{"data":[{"name":}]}`), PetQuery{})
	if err == nil {
		t.Fatalf("DecodePage returned nil error for malformed JSON")
	}
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		t.Fatalf("malformed JSON reported as shape error: %v", err)
	}
}

func TestEncodePage_RoundTripsThroughEveryShape(t *testing.T) {
	page := Page{
		Items:      []Pet{{Name: "a"}, {Name: "b"}},
		Number:     1,
		Size:       2,
		Total:      5,
		TotalPages: 3,
	}
	for _, shape := range []Shape{ShapeEnvelope, ShapeContent} {
		body, err := json.Marshal(EncodePage(page, shape))
		if err != nil {
			t.Fatalf("Marshal(%s): %v", shape, err)
		}
		got, err := DecodePage(body, PetQuery{})
		if err != nil {
			t.Fatalf("DecodePage(%s): %v", shape, err)
		}
		if got.Shape != shape || got.Number != 1 || got.Total != 5 || got.TotalPages != 3 {
			t.Fatalf("shape %s decoded to %+v", shape, got)
		}
	}

	body, err := json.Marshal(EncodePage(Page{}, ShapeEnvelope))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(body) != `{"data":[],"page":0,"size":0,"total":0,"totalPages":0}` {
		t.Fatalf("empty envelope = %s", body)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ total, size, want int }{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 12, 3},
		{5, 0, 0},
		{5, -1, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

// Package adopt provides an HTTP client for the pet adoption API.
//
// # Overview
//
// This package defines the API client pawprint uses to read pets and breed
// reference data. It handles HTTP communication, JSON decoding, query
// encoding and the normalization of pet listings into a single Page type.
//
// # Architecture
//
//   - client.go: HTTP client implementation and request handling
//   - types.go: Pet, BreedData and the species/status enumerations
//   - query.go: Filters, Sort allow-list and PetQuery encoding
//   - page.go: the listing normalization boundary (DecodePage)
//
// # API Endpoints
//
//   - GET /api/pets?page&size&sort&name&species&breed&shelter_city&status
//   - GET /api/pets/{id}
//   - GET /api/breeds/{species}?name=
//
// # Listing Shapes
//
// Deployed versions of the API have answered /api/pets in three forms. The
// canonical one is the envelope {data, page, size, total, totalPages}. The
// {content, number, size, totalElements, totalPages} page and the bare array
// are accepted for compatibility. DecodePage maps all three into Page and
// recomputes TotalPages from Total and Size. A body without a size keeps the
// server's totalPages, or takes the size from the request. A bare array is the
// whole matching list and is paged locally. Any other body, or one that
// claims pets but no pages, is reported as a *ShapeError instead of being
// read as an empty page.
//
// # Error Handling
//
//   - *StatusError: the API answered outside 2xx
//   - ErrNotFound: FetchPet received a 404
//   - ErrInvalidID: the pet ID is not a UUID (no request is made)
//   - *ShapeError: unrecognized listing body
//   - ErrInvalidSort: a sort expression outside the allow-list
//
// Network and decode failures are wrapped with the step that failed.
//
// # Usage Example
//
//	client, err := adopt.NewClient("http://localhost:8080", 5*time.Second)
//	if err != nil {
//		return err
//	}
//	page, err := client.FetchPets(ctx, adopt.PetQuery{
//		Size:    10,
//		Sort:    adopt.DefaultSort,
//		Filters: adopt.Filters{Species: "CAT"},
//	})
package adopt

package httputil

import (
	"net/http/httptest"
	"testing"

	"blogapi/internal/domain/models"
)

func TestParseListOptions(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want models.ListOptions
	}{
		{
			"no parameters",
			"/api/articles",
			models.ListOptions{},
		},
		{
			"all parameters",
			"/api/articles?search=go&ordering=-title&page=3&page_size=25",
			models.ListOptions{Search: "go", Ordering: "-title", Page: 3, PageSize: 25},
		},
		{
			"non-numeric page ignored",
			"/api/articles?page=abc&page_size=xyz",
			models.ListOptions{},
		},
		{
			"oversized page_size passed through for the service to clamp",
			"/api/articles?page_size=500",
			models.ListOptions{PageSize: 500},
		},
		{
			"negative page passed through for the service to normalize",
			"/api/articles?page=-2",
			models.ListOptions{Page: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			got := ParseListOptions(r)
			if got != tt.want {
				t.Errorf("ParseListOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

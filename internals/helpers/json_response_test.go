package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantHasNxt bool
		wantHasPrv bool
	}{
		{name: "first of many", total: 95, page: 1, perPage: 25, wantPages: 4, wantHasNxt: true},
		{name: "middle page", total: 95, page: 2, perPage: 25, wantPages: 4, wantHasNxt: true, wantHasPrv: true},
		{name: "last page", total: 95, page: 4, perPage: 25, wantPages: 4, wantHasPrv: true},
		{name: "empty result", total: 0, page: 1, perPage: 25, wantPages: 1},
		{name: "exact multiple", total: 50, page: 2, perPage: 25, wantPages: 2, wantHasPrv: true},
		{name: "defaults applied", total: 10, page: 0, perPage: 0, wantPages: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if got.TotalPages != tt.wantPages {
				t.Fatalf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.HasNext != tt.wantHasNxt {
				t.Fatalf("HasNext = %v, want %v", got.HasNext, tt.wantHasNxt)
			}
			if got.HasPrev != tt.wantHasPrv {
				t.Fatalf("HasPrev = %v, want %v", got.HasPrev, tt.wantHasPrv)
			}
			if got.Total != tt.total {
				t.Fatalf("Total = %d, want %d", got.Total, tt.total)
			}
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status int
		want   string
	}{
		{400, "BAD_REQUEST"},
		{401, "UNAUTHORIZED"},
		{403, "FORBIDDEN"},
		{404, "NOT_FOUND"},
		{409, "CONFLICT"},
		{422, "VALIDATION_ERROR"},
		{500, "INTERNAL_ERROR"},
		{418, "ERROR"},
	}
	for _, tt := range tests {
		if got := statusToErrorCode(tt.status); got != tt.want {
			t.Fatalf("statusToErrorCode(%d) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/partmatch-tech/catalog-backend/pkg/e"
)

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "unknown catalog", err: e.ErrUnknownCatalog, code: http.StatusBadRequest, msg: e.ErrUnknownCatalog.Error()},
		{name: "wrapped validation", err: e.Wrap("op", e.ErrNegativeLimit), code: http.StatusBadRequest, msg: e.ErrNegativeLimit.Error()},
		{name: "match not found", err: e.Wrap("op", e.ErrMatchNotFound), code: http.StatusNotFound, msg: e.ErrMatchNotFound.Error()},
		{name: "recompute in progress", err: e.ErrRecomputeInProgress, code: http.StatusConflict, msg: e.ErrRecomputeInProgress.Error()},
		{name: "no current version", err: e.ErrNoCurrentVersion, code: http.StatusConflict, msg: e.ErrNoCurrentVersion.Error()},
		{name: "unknown error", err: e.Wrap("op", e.ErrTransactionNotFound), code: http.StatusInternalServerError, msg: e.ErrInternalServerError.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tc.err)
			if code != tc.code || msg != tc.msg {
				t.Fatalf("got (%d, %q) want (%d, %q)", code, msg, tc.code, tc.msg)
			}
		})
	}
}

func TestParseCatalogsQuery(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   string
	}{
		{name: "absent", target: "/x", want: ""},
		{name: "single", target: "/x?catalog=eur", want: "eur"},
		{name: "list", target: "/x?catalog=eur,gur", want: "eur,gur"},
		{name: "padded", target: "/x?catalog=%20eur%20,%20gur", want: "eur,gur"},
		{name: "separators only", target: "/x?catalog=,,", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			got := strings.Join(parseCatalogsQuery(r), ",")
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestParseInt64Query(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?limit=25", nil)
	got, err := parseInt64Query(r, "limit", 0)
	if err != nil || got != 25 {
		t.Fatalf("got (%d, %v)", got, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/x", nil)
	got, err = parseInt64Query(r, "limit", 10)
	if err != nil || got != 10 {
		t.Fatalf("default: got (%d, %v)", got, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/x?limit=abc", nil)
	if _, err := parseInt64Query(r, "limit", 0); err == nil {
		t.Fatal("expected error for non-numeric value")
	}
}

func TestParseBoolQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?only_matching=true", nil)
	got, err := parseBoolQuery(r, "only_matching")
	if err != nil || !got {
		t.Fatalf("got (%v, %v)", got, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/x", nil)
	got, err = parseBoolQuery(r, "only_matching")
	if err != nil || got {
		t.Fatalf("absent: got (%v, %v)", got, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/x?only_matching=да", nil)
	if _, err := parseBoolQuery(r, "only_matching"); err == nil {
		t.Fatal("expected error for invalid value")
	}
}

func TestDecodeBody(t *testing.T) {
	var req RecomputeRequest
	r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"catalogs":["eur"]}`))
	if err := decodeBody(r, &req); err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(req.Catalogs) != 1 || req.Catalogs[0] != "eur" {
		t.Fatalf("unexpected body: %+v", req)
	}

	// Пустое тело допустимо и означает все каталоги.
	req = RecomputeRequest{}
	r = httptest.NewRequest(http.MethodPost, "/x", nil)
	if err := decodeBody(r, &req); err != nil {
		t.Fatalf("empty body: err=%v", err)
	}
	if req.Catalogs != nil {
		t.Fatalf("unexpected catalogs: %+v", req.Catalogs)
	}

	r = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{`))
	if err := decodeBody(r, &req); err == nil {
		t.Fatal("expected error for malformed json")
	}
}

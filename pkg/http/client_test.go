package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

type recordingLogger struct {
	urls []string
}

func (l *recordingLogger) LogRequest(_ string, rawURL string, _ map[string]string) {
	l.urls = append(l.urls, rawURL)
}

func (l *recordingLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {
}

func (l *recordingLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {
}

func TestRequestMergesDefaultQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if query.Get("appid") != "secret" || query.Get("units") != "imperial" || query.Get("q") != "São Paulo" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"name": "São Paulo"}`)
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL+"/", ClientOptions{
		DefaultQueryParams: map[string]string{"appid": "secret", "units": "metric"},
		Logger:             logger,
	})

	var body struct {
		Name string `json:"name"`
	}
	_, _, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("data/2.5/weather").
		WithQueryParams(map[string]string{"q": "São Paulo", "units": "imperial"}).
		WithSuccessResp(&body).
		Execute()
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if status != http.StatusOK || body.Name != "São Paulo" {
		t.Errorf("unexpected response (%d, %+v)", status, body)
	}

	if len(logger.urls) != 1 || strings.Contains(logger.urls[0], "secret") {
		t.Errorf("logged urls %v should hide the api key", logger.urls)
	}
}

func TestRequestDecodesErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"cod": 401, "message": "Invalid API key"}`)
	}))
	defer server.Close()

	var errBody struct {
		Message string `json:"message"`
	}
	_, errResp, status, err := NewHttpClient(server.URL, ClientOptions{}).Request().
		WithErrorResp(&errBody).
		Execute()

	if err == nil || status != http.StatusUnauthorized {
		t.Fatalf("got (%d, %v), want 401 with an error", status, err)
	}
	if errResp == nil || errBody.Message != "Invalid API key" {
		t.Errorf("error body = %+v", errBody)
	}
}

func TestRequestDismiss404(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, _, status, err := NewHttpClient(server.URL, ClientOptions{Dismiss404: true}).Request().Execute()
	if err != nil || status != http.StatusNotFound {
		t.Errorf("got (%d, %v), want 404 without error", status, err)
	}
}

func TestRequestDecodesLatin1XML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><city><name>Bogot\xe1</name></city>")
	}))
	defer server.Close()

	var city struct {
		Name string `xml:"name"`
	}
	if _, _, _, err := NewHttpClient(server.URL, ClientOptions{}).Request().WithSuccessResp(&city).Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if city.Name != "Bogotá" {
		t.Errorf("Name = %q, want Bogotá", city.Name)
	}
}

func TestRedactURL(t *testing.T) {
	u, _ := url.Parse("https://api.openweathermap.org/geo/1.0/direct?q=Madrid&appid=secret")
	got := redactURL(u)
	if strings.Contains(got, "secret") || !strings.Contains(got, "q=Madrid") {
		t.Errorf("redactURL = %s", got)
	}
}

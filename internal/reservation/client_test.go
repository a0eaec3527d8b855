package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, "")
	c.SetHTTPClient(srv.Client())
	return c
}

func TestListDecodesReservations(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Reservation" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"nbr":1,"nom":"Alaoui"},{"nbr":2}]`))
	})

	list, err := c.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].Nom == nil || *list[0].Nom != "Alaoui" {
		t.Errorf("first record nom = %v", list[0].Nom)
	}
	if list[1].Nom != nil {
		t.Errorf("absent nom must stay nil, got %v", *list[1].Nom)
	}
}

func TestGetNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	_, err := c.Get(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if MessageCode(err) != "not_found" {
		t.Errorf("MessageCode = %q", MessageCode(err))
	}
}

func TestCreateConflict(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	_, err := c.Create(context.Background(), Reservation{Nbr: 1})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
	if MessageCode(err) != "nbr_taken" {
		t.Errorf("MessageCode = %q", MessageCode(err))
	}
}

func TestCreateSendsWirePayload(t *testing.T) {
	var got Reservation
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	})

	in := Reservation{Nbr: 5, Nom: strp("Bennani"), Reserve: boolp(true)}
	out, err := c.Create(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if got.Nbr != 5 || got.Nom == nil || *got.Nom != "Bennani" {
		t.Errorf("server received %+v", got)
	}
	if out.Reserve == nil || !*out.Reserve {
		t.Errorf("echoed record lost the flag: %+v", out)
	}
}

func TestUpdateTargetsNbrURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/Reservation/42" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"nbr":42}`))
	})
	if _, err := c.Update(context.Background(), 42, Reservation{Nbr: 42}); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/Reservation/7" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	if err := c.Delete(context.Background(), 7); err != nil {
		t.Fatal(err)
	}
}

func TestServerErrorsMapToUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.List(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestTransportErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listening anymore

	c := NewClient(url, "")
	_, err := c.List(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
	if MessageCode(err) != "api_unreachable" {
		t.Errorf("MessageCode = %q", MessageCode(err))
	}
}

func TestRejectedStatuses(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnprocessableEntity} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		_, err := c.Create(context.Background(), Reservation{Nbr: 1})
		if !errors.Is(err, ErrRejected) {
			t.Errorf("status %d: want ErrRejected, got %v", status, err)
		}
	}
}

func TestBearerTokenHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s3cret")
	if _, err := c.List(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer s3cret" {
		t.Errorf("Authorization = %q", got)
	}
}

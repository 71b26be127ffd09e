package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"next-form-backend/internal/domain"
	"next-form-backend/pkg/apperror"

	"github.com/supabase-community/postgrest-go"
)

const (
	restPath   = "/rest/v1"
	schema     = "public"
	returnRows = "representation"
)

// Client is the long-lived handle to the Supabase REST API. It holds no
// per-request state and is safe for concurrent use.
type Client struct {
	rest    *postgrest.Client
	timeout time.Duration
}

// NewClient builds a client for the project at baseURL (e.g. https://xyz.supabase.co).
func NewClient(baseURL, serviceKey string, timeout time.Duration) *Client {
	rest := postgrest.NewClient(strings.TrimRight(baseURL, "/")+restPath, schema, map[string]string{
		"apikey":        serviceKey,
		"Authorization": "Bearer " + serviceKey,
	})
	return &Client{rest: rest, timeout: timeout}
}

type contactRepo struct {
	client *Client
	table  string
}

func NewContactRepository(client *Client, table string) domain.ContactRepository {
	if table == "" {
		table = domain.ContactsTable
	}
	return &contactRepo{client: client, table: table}
}

type insertResult struct {
	body []byte
	err  error
}

// Insert issues one PostgREST insert. postgrest-go does not take a context,
// so the call runs in its own goroutine and the caller stops waiting once ctx
// is done; the buffered channel lets that goroutine finish on its own.
func (r *contactRepo) Insert(ctx context.Context, submission domain.ContactSubmission) (string, error) {
	if r.client.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.client.timeout)
		defer cancel()
	}

	done := make(chan insertResult, 1)
	go func() {
		body, _, err := r.client.rest.
			From(r.table).
			Insert(submission, false, "", returnRows, "").
			Execute()
		done <- insertResult{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", apperror.Storage(ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", apperror.Storage(res.err)
		}
		return parseInsertedID(res.body)
	}
}

// parseInsertedID reads the id of the first returned row. An empty body or
// an empty row set is not an error: the caller reports the id as unknown.
func parseInsertedID(body []byte) (string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", nil
	}

	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		var row map[string]json.RawMessage
		if errObj := json.Unmarshal(body, &row); errObj != nil {
			return "", apperror.Storagef("malformed response from storage backend: %v", err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return "", nil
	}

	raw, ok := rows[0]["id"]
	if !ok {
		return "", nil
	}
	return formatID(raw)
}

func formatID(raw json.RawMessage) (string, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", apperror.Storagef("malformed id in storage response: %v", err)
	}

	switch id := v.(type) {
	case nil:
		return "", nil
	case string:
		return id, nil
	case json.Number:
		return id.String(), nil
	default:
		return "", apperror.Storagef("unexpected id type %T in storage response", v)
	}
}

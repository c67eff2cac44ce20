package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/store"
)

const (
	couchIDField  = "_id"
	couchRevField = "_rev"

	defaultFindPageSize = 200
)

// CouchDBConfig configures [NewCouchDBDocumentStore].
type CouchDBConfig struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration

	// PageSize is the number of documents requested per _find page.
	PageSize int
}

// CouchDBDocumentStore is a [store.DocumentStore] over the CouchDB HTTP API.
type CouchDBDocumentStore struct {
	client   *resty.Client
	pageSize int
}

// NewCouchDBDocumentStore builds a client for the CouchDB server at
// cfg.BaseURL.
func NewCouchDBDocumentStore(cfg CouchDBConfig, log *logger.Logger) *CouchDBDocumentStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5984"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultFindPageSize
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(withTraceID)
	if cfg.Username != "" {
		cli.SetBasicAuth(cfg.Username, cfg.Password)
	}

	log.Debug().Str("url", cfg.BaseURL).Msg("creating couchdb document store")
	return &CouchDBDocumentStore{client: cli, pageSize: cfg.PageSize}
}

// EnsureDatabases creates the databases backing tables. Databases that
// already exist are left untouched.
func (c *CouchDBDocumentStore) EnsureDatabases(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		resp, err := c.client.R().
			SetContext(ctx).
			SetPathParam("db", table).
			Put("/{db}")
		if err != nil {
			return transportError("create database "+table, err)
		}
		if resp.StatusCode() == http.StatusPreconditionFailed {
			continue
		}
		if err = mapHTTPError("create database "+table, resp); err != nil {
			return err
		}
	}
	return nil
}

type findRequest struct {
	Selector map[string]any `json:"selector"`
	Limit    int            `json:"limit"`
	Bookmark string         `json:"bookmark,omitempty"`
}

type findResponse struct {
	Docs     []json.RawMessage `json:"docs"`
	Bookmark string            `json:"bookmark"`
}

// Scan implements [store.DocumentStore] with Mango queries, following
// bookmarks until a short page is returned. A missing database scans as
// empty.
func (c *CouchDBDocumentStore) Scan(ctx context.Context, table string, filter store.Filter) ([]store.Document, error) {
	log := logger.FromContext(ctx)
	op := "scan " + table

	selector := map[string]any{couchIDField: map[string]any{"$gt": nil}}
	if len(filter) > 0 {
		selector = make(map[string]any, len(filter))
		for k, v := range filter {
			selector[k] = v
		}
	}

	docs := make([]store.Document, 0)
	req := findRequest{Selector: selector, Limit: c.pageSize}
	for {
		resp, err := c.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetPathParam("db", table).
			SetBody(req).
			Post("/{db}/_find")
		if err != nil {
			log.Err(err).Str("func", "*CouchDBDocumentStore.Scan").Str("table", table).Msg("request failed")
			return nil, transportError(op, err)
		}
		if resp.StatusCode() == http.StatusNotFound {
			return docs, nil
		}
		if err = mapHTTPError(op, resp); err != nil {
			log.Err(err).Str("func", "*CouchDBDocumentStore.Scan").Str("table", table).Msg("unexpected response")
			return nil, err
		}

		var page findResponse
		if err = json.Unmarshal(resp.Body(), &page); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", store.ErrMalformedDocument, op, err)
		}

		for _, raw := range page.Docs {
			doc, err := decodeCouchDocument(raw)
			if err != nil {
				return nil, err
			}
			if doc == nil {
				continue
			}
			docs = append(docs, doc)
		}

		if len(page.Docs) < c.pageSize || page.Bookmark == "" || page.Bookmark == req.Bookmark {
			break
		}
		req.Bookmark = page.Bookmark
	}

	store.SortByID(docs)
	return docs, nil
}

// Get implements [store.DocumentStore].
func (c *CouchDBDocumentStore) Get(ctx context.Context, table string, id int64, fields ...string) (store.Document, error) {
	op := "get " + table

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"db": table, "id": docID(id)}).
		Get("/{db}/{id}")
	if err != nil {
		return nil, transportError(op, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, store.ErrDocumentNotFound
	}
	if err = mapHTTPError(op, resp); err != nil {
		return nil, err
	}

	doc, err := decodeCouchDocument(resp.Body())
	if err != nil {
		return nil, err
	}

	return doc.Project(fields...), nil
}

// Put implements [store.DocumentStore]. The current revision is looked up
// first so that existing documents are replaced rather than conflicting.
func (c *CouchDBDocumentStore) Put(ctx context.Context, table string, doc store.Document) error {
	op := "put " + table

	id, err := doc.ID()
	if err != nil {
		return err
	}

	rev, err := c.revision(ctx, table, id)
	if err != nil {
		return err
	}

	body := doc.Project()
	body[store.IDField] = id
	if rev != "" {
		body[couchRevField] = rev
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{"db": table, "id": docID(id)}).
		SetBody(body).
		Put("/{db}/{id}")
	if err != nil {
		return transportError(op, err)
	}

	return mapHTTPError(op, resp)
}

// Delete implements [store.DocumentStore].
func (c *CouchDBDocumentStore) Delete(ctx context.Context, table string, id int64) error {
	op := "delete " + table

	rev, err := c.revision(ctx, table, id)
	if err != nil {
		return err
	}
	if rev == "" {
		return nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"db": table, "id": docID(id)}).
		SetQueryParam("rev", rev).
		Delete("/{db}/{id}")
	if err != nil {
		return transportError(op, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError(op, resp)
}

// revision returns the current _rev of a document, or "" when it does not
// exist.
func (c *CouchDBDocumentStore) revision(ctx context.Context, table string, id int64) (string, error) {
	op := "head " + table

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"db": table, "id": docID(id)}).
		Head("/{db}/{id}")
	if err != nil {
		return "", transportError(op, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return "", nil
	}
	if err = mapHTTPError(op, resp); err != nil {
		return "", err
	}

	return strings.Trim(resp.Header().Get("ETag"), `"`), nil
}

func docID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// decodeCouchDocument strips the CouchDB bookkeeping attributes. A document
// without an "id" attribute takes it from _id. Design documents decode to
// nil.
func decodeCouchDocument(raw []byte) (store.Document, error) {
	doc, err := store.DecodeDocument(raw)
	if err != nil {
		return nil, err
	}

	if id, ok := doc[couchIDField].(string); ok && strings.HasPrefix(id, "_design/") {
		return nil, nil
	}

	if _, ok := doc[store.IDField]; !ok {
		doc[store.IDField] = doc[couchIDField]
	}
	delete(doc, couchIDField)
	delete(doc, couchRevField)

	return doc, nil
}

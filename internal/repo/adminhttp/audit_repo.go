package adminhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

type AuditRepo struct {
	client *Client
}

func NewAuditRepo(client *Client) *AuditRepo {
	return &AuditRepo{client: client}
}

func (r *AuditRepo) Logs(ctx context.Context, filter model.AuditFilter) ([]model.AuditLog, error) {
	query := url.Values{}
	if filter.Limit > 0 {
		query.Set("limit", intToString(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", intToString(filter.Offset))
	}
	query.Set("entityType", filter.EntityType)
	query.Set("action", filter.Action)
	query.Set("userId", filter.UserID)

	return getData[[]model.AuditLog](ctx, r.client, http.MethodGet, withQuery("/audit/logs", query), nil)
}

func (r *AuditRepo) EntityLogs(ctx context.Context, entityType, entityID string, limit int) ([]model.AuditLog, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", intToString(limit))
	}
	path := "/audit/logs/" + pathEscape(entityType) + "/" + pathEscape(entityID)
	return getData[[]model.AuditLog](ctx, r.client, http.MethodGet, withQuery(path, query), nil)
}

func (r *AuditRepo) Users(ctx context.Context) ([]model.User, error) {
	return getData[[]model.User](ctx, r.client, http.MethodGet, "/audit/users", nil)
}

func (r *AuditRepo) EntityTypes(ctx context.Context) ([]string, error) {
	return getData[[]string](ctx, r.client, http.MethodGet, "/audit/entity-types", nil)
}

func (r *AuditRepo) Actions(ctx context.Context) ([]string, error) {
	return getData[[]string](ctx, r.client, http.MethodGet, "/audit/actions", nil)
}

// Export returns the export body untouched; it is CSV or JSON depending on the format.
func (r *AuditRepo) Export(ctx context.Context, params model.AuditExportParams) (model.ExportDocument, error) {
	if r.client == nil {
		return model.ExportDocument{}, &RequestError{Op: "export audit logs", Err: ErrNotInitialized}
	}

	payload, err := json.Marshal(params)
	if err != nil {
		return model.ExportDocument{}, &RequestError{Op: "marshal request body", Err: err}
	}
	resp, err := r.client.Do(ctx, Request{Method: http.MethodPost, Path: "/audit/export", Body: payload})
	if err != nil {
		return model.ExportDocument{}, err
	}
	if err := handleResponse(resp, nil); err != nil {
		return model.ExportDocument{}, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = params.Format.ContentType()
	}
	return model.ExportDocument{ContentType: contentType, Data: resp.Body}, nil
}

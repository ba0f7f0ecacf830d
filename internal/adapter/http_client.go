package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/akmalmp/go-contacts/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// loginData mirrors the login response payload: the user view plus the
// freshly issued token.
type loginData struct {
	models.UserView
	Token string `json:"token"`
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/users")
	if err != nil {
		return models.UserView{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	var view models.UserView
	if err = decodeData(resp.Body(), &view); err != nil {
		return models.UserView{}, fmt.Errorf("decode register response: %w", err)
	}

	return view, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.UserView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/users/login")
	if err != nil {
		return models.UserView{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	var data loginData
	if err = decodeData(resp.Body(), &data); err != nil {
		return models.UserView{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(data.Token)
	return data.UserView, nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.UserView, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/current")
	if err != nil {
		return models.UserView{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	var view models.UserView
	if err = decodeData(resp.Body(), &view); err != nil {
		return models.UserView{}, fmt.Errorf("decode current user response: %w", err)
	}

	return view, nil
}

func (h *httpServerAdapter) UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.UserView, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Patch("/api/users/current")
	if err != nil {
		return models.UserView{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	var view models.UserView
	if err = decodeData(resp.Body(), &view); err != nil {
		return models.UserView{}, fmt.Errorf("decode update user response: %w", err)
	}

	return view, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/users/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) CreateContact(ctx context.Context, req models.ContactRequest) (models.Contact, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/contacts")
	if err != nil {
		return models.Contact{}, fmt.Errorf("create contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var contact models.Contact
	if err = decodeData(resp.Body(), &contact); err != nil {
		return models.Contact{}, fmt.Errorf("decode create contact response: %w", err)
	}

	return contact, nil
}

func (h *httpServerAdapter) GetContact(ctx context.Context, contactID int64) (models.Contact, error) {
	resp, err := h.authedRequest(ctx).Get(contactPath(contactID))
	if err != nil {
		return models.Contact{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var contact models.Contact
	if err = decodeData(resp.Body(), &contact); err != nil {
		return models.Contact{}, fmt.Errorf("decode get contact response: %w", err)
	}

	return contact, nil
}

func (h *httpServerAdapter) UpdateContact(ctx context.Context, contactID int64, req models.ContactRequest) (models.Contact, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(contactPath(contactID))
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var contact models.Contact
	if err = decodeData(resp.Body(), &contact); err != nil {
		return models.Contact{}, fmt.Errorf("decode update contact response: %w", err)
	}

	return contact, nil
}

func (h *httpServerAdapter) DeleteContact(ctx context.Context, contactID int64) error {
	resp, err := h.authedRequest(ctx).Delete(contactPath(contactID))
	if err != nil {
		return fmt.Errorf("delete contact request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) SearchContacts(ctx context.Context, filter models.ContactFilter, page models.PageRequest) ([]models.Contact, *models.PageMeta, error) {
	req := h.authedRequest(ctx)
	if filter.Name != "" {
		req.SetQueryParam("name", filter.Name)
	}
	if filter.Email != "" {
		req.SetQueryParam("email", filter.Email)
	}
	if filter.Phone != "" {
		req.SetQueryParam("phone", filter.Phone)
	}
	if page.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page.Page))
	}
	if page.Size > 0 {
		req.SetQueryParam("size", strconv.Itoa(page.Size))
	}

	resp, err := req.Get("/api/contacts")
	if err != nil {
		return nil, nil, fmt.Errorf("search contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, nil, err
	}

	var payload struct {
		Data []models.Contact `json:"data"`
		Meta *models.PageMeta `json:"meta"`
	}
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, nil, fmt.Errorf("decode search contacts response: %w", err)
	}

	return payload.Data, payload.Meta, nil
}

func (h *httpServerAdapter) CreateAddress(ctx context.Context, contactID int64, req models.AddressRequest) (models.Address, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(addressesPath(contactID))
	if err != nil {
		return models.Address{}, fmt.Errorf("create address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	var address models.Address
	if err = decodeData(resp.Body(), &address); err != nil {
		return models.Address{}, fmt.Errorf("decode create address response: %w", err)
	}

	return address, nil
}

func (h *httpServerAdapter) GetAddress(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	resp, err := h.authedRequest(ctx).Get(addressPath(contactID, addressID))
	if err != nil {
		return models.Address{}, fmt.Errorf("get address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	var address models.Address
	if err = decodeData(resp.Body(), &address); err != nil {
		return models.Address{}, fmt.Errorf("decode get address response: %w", err)
	}

	return address, nil
}

func (h *httpServerAdapter) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	resp, err := h.authedRequest(ctx).Get(addressesPath(contactID))
	if err != nil {
		return nil, fmt.Errorf("list addresses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var addresses []models.Address
	if err = decodeData(resp.Body(), &addresses); err != nil {
		return nil, fmt.Errorf("decode list addresses response: %w", err)
	}

	return addresses, nil
}

func (h *httpServerAdapter) UpdateAddress(ctx context.Context, contactID, addressID int64, req models.AddressRequest) (models.Address, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(addressPath(contactID, addressID))
	if err != nil {
		return models.Address{}, fmt.Errorf("update address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	var address models.Address
	if err = decodeData(resp.Body(), &address); err != nil {
		return models.Address{}, fmt.Errorf("decode update address response: %w", err)
	}

	return address, nil
}

func (h *httpServerAdapter) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	resp, err := h.authedRequest(ctx).Delete(addressPath(contactID, addressID))
	if err != nil {
		return fmt.Errorf("delete address request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest returns a request carrying the stored token verbatim in the
// Authorization header: the API uses no scheme prefix.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", token)
	}
	return req
}

func contactPath(contactID int64) string {
	return fmt.Sprintf("/api/contacts/%d", contactID)
}

func addressesPath(contactID int64) string {
	return fmt.Sprintf("/api/contacts/%d/addresses", contactID)
}

func addressPath(contactID, addressID int64) string {
	return fmt.Sprintf("/api/contacts/%d/addresses/%d", contactID, addressID)
}

// decodeData unwraps the success envelope and unmarshals its "data" payload
// into out.
func decodeData(body []byte, out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}

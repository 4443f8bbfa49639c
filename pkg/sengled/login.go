package sengled

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Fixed sentinel values the service expects on every login request. They are
// protocol constants, not user configuration.
const (
	loginOsType      = "ios"
	loginUuid        = "xxx"
	loginProductCode = "life"
	loginAppCode     = "life"
)

type loginRequest struct {
	User        string `json:"user"`
	Pwd         string `json:"pwd"`
	OsType      string `json:"osType"`
	Uuid        string `json:"uuid"`
	ProductCode string `json:"productCode"`
	AppCode     string `json:"appCode"`
}

type loginResponse struct {
	JsessionId string `json:"jsessionId"`
}

// login exchanges credentials for a session token. The service has no status
// field: a rejected login answers 200 with a body of a different shape, so
// any well-formed JSON that does not carry a jsessionId is a failed login,
// never a decode error.
func (a *Api) login(ctx context.Context, user string, pass string) (string, error) {
	body, err := json.Marshal(loginRequest{
		User:        user,
		Pwd:         pass,
		OsType:      loginOsType,
		Uuid:        loginUuid,
		ProductCode: loginProductCode,
		AppCode:     loginAppCode,
	})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.loginUrl, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	a.log.Info("Logging in", "user", user, "url", a.loginUrl)
	res, err := a.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login: unexpected status %s", res.Status)
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	var out loginResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return "", fmt.Errorf("login: malformed response: %w", err)
		}
		return "", ErrAuthenticationFailed
	}
	if out.JsessionId == "" {
		return "", ErrAuthenticationFailed
	}

	a.log.Info("Logged in", "user", user)
	return out.JsessionId, nil
}

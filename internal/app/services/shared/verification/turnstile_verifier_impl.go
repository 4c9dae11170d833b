package verification

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type turnstileVerifier struct {
	BaseUrl string
	Secret  string
	http    *http.Client
}

func NewTurnstileVerifier(cfg config.Verification) contracts.TokenVerifier {
	return &turnstileVerifier{
		BaseUrl: cfg.BaseUrl,
		Secret:  cfg.Secret,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (v *turnstileVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if token == "" {
		return exceptions.ErrVerificationFailed(errors.New("token is empty"))
	}

	form := url.Values{}
	form.Set("secret", v.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, v.BaseUrl+"/siteverify", strings.NewReader(form.Encode()))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	resp, err := v.http.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return exceptions.BuildKindedCustomError(nil, exceptions.KindNetwork, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevVerifierStatus, resp.StatusCode))
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return exceptions.ErrDecodeResponse(err, "siteverify")
	}

	if !result.Success {
		return exceptions.ErrVerificationFailed(errors.New(strings.Join(result.ErrorCodes, ", ")))
	}
	return nil
}

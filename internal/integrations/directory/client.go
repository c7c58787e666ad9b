package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"recruitment-form/internal/dto"
	apperrors "recruitment-form/pkg/errors"
)

// Client ходит в удалённый справочник филиалов (GET /branches) по HTTP.
type Client struct {
	httpClient *http.Client
	url        string
	logger     *zap.Logger
}

func New(url string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		logger:     logger.Named("branch_directory_client"),
	}
}

func (c *Client) Name() string {
	return "directory"
}

// FetchBranches отдаёт разобранный ответ справочника. success != true считается ошибкой.
func (c *Client) FetchBranches(ctx context.Context) (*dto.BranchListResponse, error) {
	raw, err := c.fetchData(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения справочника филиалов: %w", err)
	}

	var envelope wireResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON справочника: %v: %w", err, apperrors.ErrMalformedResponse)
	}
	if envelope.Success == nil || !*envelope.Success {
		return nil, fmt.Errorf("справочник вернул success != true: %w", apperrors.ErrMalformedResponse)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("справочник не вернул data: %w", apperrors.ErrMalformedResponse)
	}

	records := make([]dto.BranchRecord, 0, len(envelope.Data))
	for _, ext := range envelope.Data {
		records = append(records, mapRecord(ext))
	}

	c.logger.Debug("Справочник филиалов получен",
		zap.Int("count", len(records)),
		zap.String("note", envelope.Note),
	)

	resp := dto.NewBranchListResponse(records, envelope.Note)
	return resp, nil
}

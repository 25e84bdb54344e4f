package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// orderPayload is the JSON carried in the "data" part of create and edit
// forms. Fields outside this set are ignored. The custom size note is also
// accepted as custom_size_note; customSizeNote wins when both are set.
type orderPayload struct {
	Customer            string          `json:"customer"         validate:"required"`
	Size                string          `json:"size"             validate:"required"`
	CustomSizeNote      string          `json:"customSizeNote"`
	CustomSizeNoteSnake string          `json:"custom_size_note"`
	Shape               string          `json:"shape"            validate:"required"`
	Quantity            int             `json:"quantity"         validate:"required,min=1"`
	Price               decimal.Decimal `json:"price"`
	Note                string          `json:"note"`
	Status              string          `json:"status"`
}

func (p orderPayload) customSizeNote() string {
	if p.CustomSizeNote != "" {
		return p.CustomSizeNote
	}
	return p.CustomSizeNoteSnake
}

func (p orderPayload) toDetails() (order.Details, error) {
	status := order.ParseStatus(p.Status)
	if p.Status != "" && status == order.Unknown {
		return order.Details{}, fmt.Errorf("%w: %q", order.ErrUnknownStatus, p.Status)
	}

	return order.Details{
		Customer:       p.Customer,
		Size:           order.Size(p.Size),
		CustomSizeNote: p.customSizeNote(),
		Shape:          order.Shape(p.Shape),
		Quantity:       p.Quantity,
		Price:          p.Price,
		Note:           p.Note,
		Status:         status,
	}, nil
}

func invalidParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

func readOrderPayload(c echo.Context, form *multipart.Form) (order.Details, error) {
	data := form.Value["data"]
	if len(data) == 0 || data[0] == "" {
		return order.Details{}, echo.NewHTTPError(http.StatusBadRequest, "data is required")
	}

	var payload orderPayload
	if err := json.Unmarshal([]byte(data[0]), &payload); err != nil {
		return order.Details{}, echo.NewHTTPError(http.StatusBadRequest, "data is not valid JSON")
	}
	if err := c.Validate(&payload); err != nil {
		return order.Details{}, err
	}

	return payload.toDetails()
}

func readImageBlobs(form *multipart.Form, field string, maxBytes int64) ([]ports.ImageBlob, error) {
	files := form.File[field]
	blobs := make([]ports.ImageBlob, 0, len(files))
	for _, fh := range files {
		if maxBytes > 0 && fh.Size > maxBytes {
			return nil, echo.NewHTTPError(
				http.StatusRequestEntityTooLarge,
				fmt.Sprintf("image %s exceeds %d bytes", fh.Filename, maxBytes),
			)
		}

		data, err := readFile(fh)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "cannot read image "+fh.Filename)
		}

		blobs = append(blobs, ports.ImageBlob{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Data:        data,
		})
	}
	return blobs, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"wfp-backend/lib/smtp"
)

// ErrNotify mails every 5xx response to the operations address.
func ErrNotify(from, to string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()

		if statusCode >= http.StatusInternalServerError && to != "" {
			body := string(c.Response().Body())

			var data struct {
				Status  string `json:"status"`
				Message string `json:"message"`
			}
			unmErr := json.Unmarshal(c.Response().Body(), &data)
			if unmErr != nil {
				log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
			}

			method := c.Method()
			path := c.OriginalURL()
			if r := c.Route(); r != nil {
				path = r.Path
			}

			msg := data.Message
			if msg == "" {
				msg = body
			}

			go func() {
				message := fmt.Sprintf("code: %d\nmethod: %s\npath: %s\nerror: %s", statusCode, method, path, msg)
				if sendErr := smtp.Instance.SendEMail(from, to, message, "server error"); sendErr != nil {
					log.WithError(sendErr).Warn("error sending error notification")
				}
			}()
		}

		return err
	}
}

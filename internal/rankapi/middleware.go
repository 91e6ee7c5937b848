package rankapi

import (
	"bytes"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

// ZstdMiddleware decompresses request bodies sent with
// Content-Encoding: zstd and compresses responses when the client
// accepts zstd. Whitelisted routes pass through untouched.
func ZstdMiddleware(whitelistedRoutes []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, route := range whitelistedRoutes {
			if path == route {
				return c.Next()
			}
		}

		if strings.ToLower(c.Get("content-encoding")) == "zstd" && len(c.Body()) > 0 {
			decoder, err := zstd.NewReader(bytes.NewReader(c.Body()))
			if err != nil {
				log.Err(err).Msg("failed to create zstd decoder")
				return c.Status(fiber.StatusBadRequest).JSON(RankResponse{Error: "invalid zstd request body"})
			}
			decompressed, err := io.ReadAll(decoder)
			decoder.Close()
			if err != nil {
				log.Err(err).Msg("failed to decompress request body")
				return c.Status(fiber.StatusBadRequest).JSON(RankResponse{Error: "invalid zstd request body"})
			}
			c.Request().SetBody(decompressed)
			c.Request().Header.Del("Content-Encoding")
		}

		if err := c.Next(); err != nil {
			return err
		}

		if strings.Contains(strings.ToLower(c.Get("accept-encoding")), "zstd") {
			responseBody := c.Response().Body()
			if len(responseBody) == 0 {
				return nil
			}
			encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
			if err != nil {
				log.Err(err).Msg("failed to create zstd encoder")
				return nil
			}
			compressed := encoder.EncodeAll(responseBody, nil)
			if err := encoder.Close(); err != nil {
				return nil
			}
			c.Response().SetBody(compressed)
			c.Response().Header.Set("Content-Encoding", "zstd")
		}
		return nil
	}
}

package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestDailyKey(t *testing.T) {
	day := time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "dau:2024-03-09", DailyKey(day))
}

func TestDailyActiveUserRecorderQueuesClient(t *testing.T) {
	r := newDailyActiveUserRecorder(nil)

	app := fiber.New()
	app.Use("/updateCheck", r.handle)
	app.Get("/updateCheck", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	testCases := []struct {
		Name   string
		Target string
		// empty means any remote address
		Expected string
	}{
		{Name: "client id", Target: "/updateCheck?clientUniqueId=device-1", Expected: "device-1"},
		{Name: "falls back to ip", Target: "/updateCheck"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.Target, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

			select {
			case id := <-r.ch:
				require.NotEmpty(t, id)
				if tc.Expected != "" {
					require.Equal(t, tc.Expected, id)
				}
			default:
				t.Fatal("client was not queued")
			}
		})
	}
}

func TestDailyActiveUserRecorderStops(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() {
		_ = rdb.Close()
	})
	r := newDailyActiveUserRecorder(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		r.run(ctx)
		close(stopped)
	}()

	cancel()
	require.Eventually(t, func() bool {
		select {
		case <-stopped:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

package redis

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}

// newTestClient returns a client backed by a MockDriver. Name may be called
// any number of times by the observer and the logging helpers.
func newTestClient(t *testing.T) (*RedisClient, *MockDriver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	drv := NewMockDriver(ctrl)
	drv.EXPECT().Name().Return("mock").AnyTimes()
	return NewClientWithDriver(drv, nopLogger{}), drv
}

// recorder is a cmdable that captures the wire arguments and answers with a
// canned reply, so command builders can be tested without a driver.
type recorder struct {
	args  []interface{}
	reply interface{}
	err   error
	calls int
}

func (rec *recorder) cmdable() cmdable {
	return func(_ context.Context, cmd Cmder) error {
		if err := cmd.Err(); err != nil {
			return err
		}
		rec.calls++
		rec.args = cmd.Args()
		cmd.setReply(rec.reply, rec.err)
		return cmd.Err()
	}
}

func newRecorder(reply interface{}) (*recorder, cmdable) {
	rec := &recorder{reply: reply}
	return rec, rec.cmdable()
}

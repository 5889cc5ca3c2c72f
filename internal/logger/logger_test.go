package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func TestFromGin_CarriesIdentityFields(t *testing.T) {
	c := testContext()
	c.Set("email", "dana@example.com")
	c.Set("request_id", "req-123")

	l := FromGin(c)

	assert.Equal(t, "dana@example.com", l.Entry.Data["user"])
	assert.Equal(t, "req-123", l.Entry.Data["request_id"])
}

func TestFromGin_AnonymousRequest(t *testing.T) {
	l := FromGin(testContext())

	assert.NotContains(t, l.Entry.Data, "user")
	assert.NotContains(t, l.Entry.Data, "request_id")
}

func TestWithFields_Chains(t *testing.T) {
	c := testContext()
	c.Set("request_id", "req-456")

	l := FromGin(c).WithField("name", "pat").WithFields(map[string]interface{}{
		"status": 502,
	})

	assert.Equal(t, "req-456", l.Entry.Data["request_id"])
	assert.Equal(t, "pat", l.Entry.Data["name"])
	assert.Equal(t, 502, l.Entry.Data["status"])
}

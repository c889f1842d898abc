package httputil_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlens/backend/internal/httputil"
	"github.com/stretchr/testify/assert"
)

type resource struct {
	Name     string `json:"name" form:"name"`
	Note     string `json:"note" form:"note"`
	Priority uint   `json:"priority" form:"priority"`
	Limit    int    `form:"limit" filterField:"false"`
}

// TestBindData verifies that BindData succeeds on valid data.
func TestBindData(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.POST("/", func(ctx *gin.Context) {
		var o resource
		err := httputil.BindData(c, &o)
		assert.Nil(t, err)
		assert.Equal(t, "Drink more water!", o.Name)
	})

	c.Request, _ = http.NewRequest(http.MethodPost, "https://example.com/", bytes.NewBufferString(`{ "name": "Drink more water!" }`))
	r.ServeHTTP(w, c.Request)
}

func TestBindDataErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"Invalid body", `{ invalid json: "Drink more water! }`, httputil.ErrInvalidBody},
		{"Empty body", "", httputil.ErrRequestBodyEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)

			r.POST("/", func(ctx *gin.Context) {
				var o resource
				assert.ErrorIs(t, httputil.BindData(c, &o), tt.err)
			})

			c.Request, _ = http.NewRequest(http.MethodPost, "https://example.com/", bytes.NewBufferString(tt.body))
			r.ServeHTTP(w, c.Request)
		})
	}
}

// TestBindDataTypeError verifies that type errors are passed through so that
// callers can show which field is wrong.
func TestBindDataTypeError(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.POST("/", func(ctx *gin.Context) {
		var o resource
		err := httputil.BindData(c, &o)
		assert.NotErrorIs(t, err, httputil.ErrInvalidBody)
		assert.Contains(t, err.Error(), "priority")
	})

	c.Request, _ = http.NewRequest(http.MethodPost, "https://example.com/", bytes.NewBufferString(`{ "priority": "high" }`))
	r.ServeHTTP(w, c.Request)
}

func TestGetBodyFields(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.PATCH("/", func(ctx *gin.Context) {
		fields, err := httputil.GetBodyFields(c, resource{})
		assert.Nil(t, err)
		assert.Equal(t, []any{"Note", "Priority"}, fields)

		// The body can still be bound afterwards
		var o resource
		assert.Nil(t, httputil.BindData(c, &o))
		assert.Equal(t, uint(3), o.Priority)
	})

	c.Request, _ = http.NewRequest(http.MethodPatch, "https://example.com/", bytes.NewBufferString(`{ "note": "", "priority": 3 }`))
	r.ServeHTTP(w, c.Request)
}

func TestGetBodyFieldsInvalid(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.PATCH("/", func(ctx *gin.Context) {
		_, err := httputil.GetBodyFields(c, resource{})
		assert.ErrorIs(t, err, httputil.ErrInvalidBody)
	})

	c.Request, _ = http.NewRequest(http.MethodPatch, "https://example.com/", bytes.NewBufferString(`[1, 2]`))
	r.ServeHTTP(w, c.Request)
}

func TestGetURLFields(t *testing.T) {
	u, _ := url.Parse("https://example.com/?name=Food&limit=2&unknown=yes")

	queryFields, setFields := httputil.GetURLFields(u, resource{})
	assert.Equal(t, []any{"Name"}, queryFields)
	assert.Equal(t, []string{"Name", "Limit"}, setFields)
}

func TestGetURLFieldsEmpty(t *testing.T) {
	u, _ := url.Parse("https://example.com/")

	queryFields, setFields := httputil.GetURLFields(u, resource{})
	assert.Len(t, queryFields, 0)
	assert.Len(t, setFields, 0)
}

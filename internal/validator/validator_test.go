package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	Setup()
}

// bindJSON runs Bind against a synthetic request carrying the given body.
func bindJSON(t *testing.T, body string, dst interface{}) map[string]string {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return Bind(c, dst)
}

func TestSignupRequestValid(t *testing.T) {
	var req model.SignupRequest
	fields := bindJSON(t, `{"email":"a@x.com","password":"pass1","firstName":"Ann","lastName":"Lee"}`, &req)
	if fields != nil {
		t.Errorf("expected valid signup payload to bind, got field errors: %v", fields)
	}
}

func TestSignupRequestRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"bad email", `{"email":"not-an-email","password":"pass1","firstName":"Ann","lastName":"Lee"}`, "email"},
		{"password too short", `{"email":"a@x.com","password":"abc","firstName":"Ann","lastName":"Lee"}`, "password"},
		{"password too long", `{"email":"a@x.com","password":"abcdefghijklmnop","firstName":"Ann","lastName":"Lee"}`, "password"},
		{"first name too short", `{"email":"a@x.com","password":"pass1","firstName":"An","lastName":"Lee"}`, "firstName"},
		{"last name too long", `{"email":"a@x.com","password":"pass1","firstName":"Ann","lastName":"Leeeeeeeeeeeeeeee"}`, "lastName"},
		{"missing email", `{"password":"pass1","firstName":"Ann","lastName":"Lee"}`, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req model.SignupRequest
			fields := bindJSON(t, tc.body, &req)
			if fields == nil {
				t.Fatal("expected validation failure, got none")
			}
			if _, ok := fields[tc.field]; !ok {
				t.Errorf("expected error on field %q, got %v", tc.field, fields)
			}
		})
	}
}

func TestCreateCourseRequestRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"title too short", `{"title":"Go","description":"A ten+ char desc","imageUrl":"https://x.com/i.png","price":10}`, "title"},
		{"description too short", `{"title":"Intro","description":"short","imageUrl":"https://x.com/i.png","price":10}`, "description"},
		{"bad image url", `{"title":"Intro","description":"A ten+ char desc","imageUrl":"not a url","price":10}`, "imageUrl"},
		{"zero price", `{"title":"Intro","description":"A ten+ char desc","imageUrl":"https://x.com/i.png","price":0}`, "price"},
		{"negative price", `{"title":"Intro","description":"A ten+ char desc","imageUrl":"https://x.com/i.png","price":-5}`, "price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req model.CreateCourseRequest
			fields := bindJSON(t, tc.body, &req)
			if fields == nil {
				t.Fatal("expected validation failure, got none")
			}
			if _, ok := fields[tc.field]; !ok {
				t.Errorf("expected error on field %q, got %v", tc.field, fields)
			}
		})
	}
}

func TestUpdateCourseRequestOptionalFields(t *testing.T) {
	var req model.UpdateCourseRequest
	fields := bindJSON(t, `{"courseId":"3f1e2d40-0000-4000-8000-000000000000"}`, &req)
	if fields != nil {
		t.Fatalf("expected courseId-only payload to bind, got field errors: %v", fields)
	}
	if req.Title != nil || req.Description != nil || req.ImageURL != nil || req.Price != nil {
		t.Error("expected omitted optional fields to stay nil")
	}

	fields = bindJSON(t, `{"courseId":"3f1e2d40-0000-4000-8000-000000000000","price":0.5}`, &req)
	if fields != nil {
		t.Fatalf("expected payload with price to bind, got field errors: %v", fields)
	}
	if req.Price == nil || *req.Price != 0.5 {
		t.Errorf("expected price pointer 0.5, got %v", req.Price)
	}
}

func TestUpdateCourseRequestRejectsShortID(t *testing.T) {
	var req model.UpdateCourseRequest
	fields := bindJSON(t, `{"courseId":"abc"}`, &req)
	if fields == nil {
		t.Fatal("expected validation failure for short courseId")
	}
	if _, ok := fields["courseId"]; !ok {
		t.Errorf("expected error on courseId, got %v", fields)
	}
}

func TestBindReportsJSONSyntaxError(t *testing.T) {
	var req model.SigninRequest
	fields := bindJSON(t, `{"email":`, &req)
	if fields == nil {
		t.Fatal("expected bind failure for malformed JSON")
	}
	if _, ok := fields["detail"]; !ok {
		t.Errorf("expected detail entry for non-validation error, got %v", fields)
	}
}

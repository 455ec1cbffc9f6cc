package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/services/drivers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriverHandler(t *testing.T) (*DriverHandler, *mocks.MockDriverUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockDriverUC(ctrl)
	return NewDriverHandler(mockUC, &models.Config{}), mockUC
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestList(t *testing.T) {
	h, mockUC := newDriverHandler(t)
	mockUC.EXPECT().
		ListDrivers(gomock.Any(), "samand").
		Return([]*models.Driver{{ID: uuid.New(), FirstName: "Reza"}}, nil)

	c, rec := newContext(http.MethodGet, "/manage/api/drivers?search=samand", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Reza", list[0]["firstName"])
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		mockSetup      func(mockUC *mocks.MockDriverUC)
		expectedStatus int
	}{
		{
			name: "Created",
			body: `{"Firstname": "Reza", "lastName": "Karimi", "phoneNumber": "09351112233", "carName": "Samand"}`,
			mockSetup: func(mockUC *mocks.MockDriverUC) {
				mockUC.EXPECT().
					CreateDriver(gomock.Any(), models.DriverRequest{
						FirstName: "Reza", LastName: "Karimi", PhoneNumber: "09351112233", CarName: "Samand",
					}).
					Return(&models.Driver{ID: uuid.New()}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing field",
			body: `{"firstName": "Reza"}`,
			mockSetup: func(mockUC *mocks.MockDriverUC) {
				mockUC.EXPECT().
					CreateDriver(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.MissingField("lastName", "All driver fields are required"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed body",
			body:           `{"firstName":`,
			mockSetup:      func(mockUC *mocks.MockDriverUC) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, mockUC := newDriverHandler(t)
			tc.mockSetup(mockUC)

			c, rec := newContext(http.MethodPost, "/manage/api/drivers", tc.body)
			require.NoError(t, h.Create(c))
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestUpdate(t *testing.T) {
	h, mockUC := newDriverHandler(t)
	id := uuid.New()
	mockUC.EXPECT().
		UpdateDriver(gomock.Any(), id, gomock.Any()).
		Return(nil, apperrors.NotFound("driver"))

	c, rec := newContext(http.MethodPut, "/manage/api/drivers/"+id.String(),
		`{"firstName": "Reza", "lastName": "Karimi", "phoneNumber": "09351112233", "carName": "Pride"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAndDelete(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		h, mockUC := newDriverHandler(t)
		id := uuid.New()
		mockUC.EXPECT().GetDriver(gomock.Any(), id).Return(&models.Driver{ID: id, CarName: "Pride"}, nil)

		c, rec := newContext(http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Pride")
	})

	t.Run("Delete", func(t *testing.T) {
		h, mockUC := newDriverHandler(t)
		id := uuid.New()
		mockUC.EXPECT().DeleteDriver(gomock.Any(), id).Return(nil)

		c, rec := newContext(http.MethodDelete, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
	})

	t.Run("Invalid id", func(t *testing.T) {
		h, _ := newDriverHandler(t)

		c, rec := newContext(http.MethodDelete, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("7")

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure", func(t *testing.T) {
		h, mockUC := newDriverHandler(t)
		id := uuid.New()
		mockUC.EXPECT().DeleteDriver(gomock.Any(), id).Return(errors.New("db down"))

		c, rec := newContext(http.MethodDelete, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

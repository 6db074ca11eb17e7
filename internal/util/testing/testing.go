package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func MakeRequest(
	router *gin.Engine,
	method, url, authHeader string,
	body any,
) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(jsonBody)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	body any,
	expectedStatus int,
) *httptest.ResponseRecorder {
	w := MakeRequest(router, "POST", url, authHeader, body)
	require.Equal(t, expectedStatus, w.Code, "unexpected status for POST %s: %s", url, w.Body.String())
	return w
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	body any,
	expectedStatus int,
	response any,
) {
	w := MakePostRequest(t, router, url, authHeader, body, expectedStatus)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), response))
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	expectedStatus int,
) *httptest.ResponseRecorder {
	w := MakeRequest(router, "GET", url, authHeader, nil)
	require.Equal(t, expectedStatus, w.Code, "unexpected status for GET %s: %s", url, w.Body.String())
	return w
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	expectedStatus int,
	response any,
) {
	w := MakeGetRequest(t, router, url, authHeader, expectedStatus)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), response))
}

func MakePutRequest(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	body any,
	expectedStatus int,
) *httptest.ResponseRecorder {
	w := MakeRequest(router, "PUT", url, authHeader, body)
	require.Equal(t, expectedStatus, w.Code, "unexpected status for PUT %s: %s", url, w.Body.String())
	return w
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	body any,
	expectedStatus int,
	response any,
) {
	w := MakePutRequest(t, router, url, authHeader, body, expectedStatus)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), response))
}

func MakeDeleteRequest(
	t *testing.T,
	router *gin.Engine,
	url, authHeader string,
	expectedStatus int,
) *httptest.ResponseRecorder {
	w := MakeRequest(router, "DELETE", url, authHeader, nil)
	require.Equal(t, expectedStatus, w.Code, "unexpected status for DELETE %s: %s", url, w.Body.String())
	return w
}

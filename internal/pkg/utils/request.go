package utils

import (
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"mime"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
)

// DecodeJSONBody decodes a plain JSON request body into dst.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// DecodeBodyWithFile decodes a request that may carry an attachment. A
// multipart body holds the JSON payload in the "data" field and the file
// under fileField; a plain JSON body is decoded directly and returns no
// file. The returned file is nil when the client sent none.
func DecodeBodyWithFile(r *http.Request, maxUploadMB int64, dst interface{}, fileField string) (*requests.UploadedFile, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))
	if err != nil || mediaType != constvars.MIMEMultipartForm {
		return nil, DecodeJSONBody(r, dst)
	}

	if err := r.ParseMultipartForm(maxUploadMB << 20); err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	payload := r.FormValue(constvars.MultipartFieldData)
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), dst); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	file, header, err := r.FormFile(fileField)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	if header.Size > maxUploadMB<<20 {
		file.Close()
		return nil, exceptions.ErrAttachmentTooLarge(nil)
	}

	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	return &requests.UploadedFile{
		Reader:      file,
		Size:        header.Size,
		ContentType: contentType,
		Filename:    header.Filename,
	}, nil
}

// ParsePagination reads page and page_size query parameters with sane
// defaults and bounds.
func ParsePagination(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

package exceptions

import (
	"fmt"
	"medintake-service/internal/pkg/constvars"
)

var (
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInvalidIdentifier, constvars.ErrClientInvalidIdentifier, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, FormatAllValidationErrors(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, KindInternal, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Identity
	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientPatientNotFound, constvars.ErrDevDBDocumentNotFound)
	}
	ErrVisitNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientVisitNotFound, constvars.ErrDevDBDocumentNotFound)
	}
	ErrAppointmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevDBDocumentNotFound)
	}
	ErrUnknownTopic = func(err error, topic string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientUnknownTopic, fmt.Sprintf(constvars.ErrDevUnknownSocialHistoryTopic, topic))
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocument)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInvalidIdentifier, constvars.ErrClientInvalidIdentifier, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelData)
	}

	// Attachment store
	ErrAttachmentStore = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, KindAttachment, constvars.ErrClientAttachmentFailed, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrAttachmentFetch = func(err error, reference string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, KindAttachment, constvars.ErrClientAttachmentFailed, fmt.Sprintf(constvars.ErrDevMinioFailedToFetchObject, reference))
	}
	ErrAttachmentDelete = func(err error, reference string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, KindAttachment, constvars.ErrClientAttachmentFailed, fmt.Sprintf(constvars.ErrDevMinioFailedToDeleteObject, reference))
	}
	ErrAttachmentNotFound = func(err error, reference string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientAttachmentNotFound, fmt.Sprintf(constvars.ErrDevMinioObjectNotFound, reference))
	}
	ErrAttachmentTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooLarge, KindValidation, constvars.ErrClientFileTooLarge, constvars.ErrDevCannotParseMultipartForm)
	}
)

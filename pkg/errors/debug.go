package errors

import (
	"errors"
	"fmt"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	Service       string `json:"service,omitempty"`
	ServiceCode   string `json:"service_code,omitempty"`
	ServiceType   string `json:"service_type,omitempty"`
	StatusCode    int    `json:"status_code,omitempty"`
	RequestID     string `json:"request_id,omitempty"`
	ServiceDetail string `json:"service_detail,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	if se := AsService(err); se != nil {
		d.Service = se.Service
		d.ServiceCode = se.Code
		d.ServiceType = se.Type
		d.StatusCode = se.StatusCode
		d.RequestID = se.RequestID
		d.ServiceDetail = se.Message
	}

	return d
}

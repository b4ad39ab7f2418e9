package types

import "errors"

var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrAmount                  = errors.New("ErrAmount")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrSign                    = errors.New("ErrSign")
	ErrExecNotFound            = errors.New("ErrExecNotFound")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrInvalidAddress          = errors.New("ErrInvalidAddress")
)

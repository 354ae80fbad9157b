package qrsession

import "maya-connect/internal/pkg/errs"

var errExpiredCurrent = errs.Mark(errs.New("current qr code already expired"), errs.ErrQRUnavailable)

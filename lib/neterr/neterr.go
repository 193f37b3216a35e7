// Package neterr classifies transport failures from the upstream
// fetchers into a small set of kinds the repository layer keys its
// fallback decisions off of.
package neterr

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

type Kind int

const (
	Unknown Kind = iota
	NoConnectivity
	Timeout
	DnsFailure
	TlsFailure
)

func (k Kind) String() string {
	switch k {
	case NoConnectivity:
		return "no_connectivity"
	case Timeout:
		return "timeout"
	case DnsFailure:
		return "dns_failure"
	case TlsFailure:
		return "tls_failure"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch failed (%s): %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify wraps a transport error with its kind. A nil error stays
// nil so call sites can wrap unconditionally.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindOf(err), Err: err}
}

func KindOf(err error) Kind {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return DnsFailure
	}

	if os.IsTimeout(err) {
		return Timeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}

	var certErr x509.CertificateInvalidError
	var authErr x509.UnknownAuthorityError
	var hostErr x509.HostnameError
	var recordErr tls.RecordHeaderError
	if errors.As(err, &certErr) ||
		errors.As(err, &authErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &recordErr) {
		return TlsFailure
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.ENETDOWN) {
		return NoConnectivity
	}

	return Unknown
}

// IsTransport reports whether err came out of Classify.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

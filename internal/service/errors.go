package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("parameter tidak valid")
	ErrPostNotFound      = errors.New("postingan tidak ditemukan")
	ErrCommentNotFound   = errors.New("komentar tidak ditemukan")
	ErrArticleNotFound   = errors.New("artikel tidak ditemukan")
	ErrEventNotFound     = errors.New("acara tidak ditemukan")
	ErrVideoNotFound     = errors.New("video tidak ditemukan")
	ErrUserNotFound      = errors.New("pengguna tidak ditemukan")
	ErrUserExist         = errors.New("username atau email sudah terdaftar")
	ErrPageOutOfRange    = errors.New("halaman di luar jangkauan")
	ErrAuthorRequired    = errors.New("nama penulis wajib diisi")
	ErrContentRequired   = errors.New("isi tidak boleh kosong")
	ErrTooManyImages     = errors.New("jumlah gambar melebihi batas")
	ErrFileNotSupported  = errors.New("jenis berkas tidak didukung")
	ErrFileTooLarge      = errors.New("ukuran berkas melebihi batas")
	ErrImageNotFound     = errors.New("gambar tidak ditemukan")
	ErrPasswordIncorrect = errors.New("password salah")
	ErrLookupUnavailable = errors.New("layanan eksternal tidak tersedia")
	UnauthorizedError    = errors.New("tidak memiliki izin")
	UnExpectedError      = errors.New("terjadi kesalahan, coba lagi nanti")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrArticleNotFound:   NotFound,
	ErrEventNotFound:     NotFound,
	ErrVideoNotFound:     NotFound,
	ErrUserNotFound:      NotFound,
	ErrUserExist:         BadRequest,
	ErrPageOutOfRange:    BadRequest,
	ErrAuthorRequired:    BadRequest,
	ErrContentRequired:   BadRequest,
	ErrTooManyImages:     BadRequest,
	ErrFileNotSupported:  BadRequest,
	ErrFileTooLarge:      BadRequest,
	ErrImageNotFound:     NotFound,
	ErrPasswordIncorrect: Unauthorized,
	ErrLookupUnavailable: InternalServerError,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}

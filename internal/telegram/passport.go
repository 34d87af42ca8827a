package telegram

// PassportData is Telegram Passport data shared with the bot.
type PassportData struct {
	Data        []EncryptedPassportElement `json:"data,omitempty"`
	Credentials *EncryptedCredentials      `json:"credentials,omitempty"`
}

type PassportFile struct {
	FileID       *string `json:"file_id,omitempty"`
	FileUniqueID *string `json:"file_unique_id,omitempty"`
	FileSize     *int64  `json:"file_size,omitempty"`
	FileDate     *int64  `json:"file_date,omitempty"`
}

type EncryptedPassportElement struct {
	Type        *string        `json:"type,omitempty"`
	Data        *string        `json:"data,omitempty"`
	PhoneNumber *string        `json:"phone_number,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Files       []PassportFile `json:"files,omitempty"`
	FrontSide   *PassportFile  `json:"front_side,omitempty"`
	ReverseSide *PassportFile  `json:"reverse_side,omitempty"`
	Selfie      *PassportFile  `json:"selfie,omitempty"`
	Translation []PassportFile `json:"translation,omitempty"`
	Hash        *string        `json:"hash,omitempty"`
}

type EncryptedCredentials struct {
	Data   *string `json:"data,omitempty"`
	Hash   *string `json:"hash,omitempty"`
	Secret *string `json:"secret,omitempty"`
}

// PassportElementError is an error in a submitted Passport element. The
// wire "source" tells the variants apart.
type PassportElementError interface{ passportElementError() }

type PassportElementErrorDataField struct {
	Source    *string `json:"source,omitempty" schema:"required,const=data"`
	Type      *string `json:"type,omitempty" schema:"required"`
	FieldName *string `json:"field_name,omitempty" schema:"required"`
	DataHash  *string `json:"data_hash,omitempty" schema:"required"`
	Message   *string `json:"message,omitempty" schema:"required"`
}

type PassportElementErrorFrontSide struct {
	Source   *string `json:"source,omitempty" schema:"required,const=front_side"`
	Type     *string `json:"type,omitempty" schema:"required"`
	FileHash *string `json:"file_hash,omitempty" schema:"required"`
	Message  *string `json:"message,omitempty" schema:"required"`
}

type PassportElementErrorReverseSide struct {
	Source   *string `json:"source,omitempty" schema:"required,const=reverse_side"`
	Type     *string `json:"type,omitempty" schema:"required"`
	FileHash *string `json:"file_hash,omitempty" schema:"required"`
	Message  *string `json:"message,omitempty" schema:"required"`
}

type PassportElementErrorSelfie struct {
	Source   *string `json:"source,omitempty" schema:"required,const=selfie"`
	Type     *string `json:"type,omitempty" schema:"required"`
	FileHash *string `json:"file_hash,omitempty" schema:"required"`
	Message  *string `json:"message,omitempty" schema:"required"`
}

type PassportElementErrorFile struct {
	Source   *string `json:"source,omitempty" schema:"required,const=file"`
	Type     *string `json:"type,omitempty" schema:"required"`
	FileHash *string `json:"file_hash,omitempty" schema:"required"`
	Message  *string `json:"message,omitempty" schema:"required"`
}

type PassportElementErrorFiles struct {
	Source     *string  `json:"source,omitempty" schema:"required,const=files"`
	Type       *string  `json:"type,omitempty" schema:"required"`
	FileHashes []string `json:"file_hashes,omitempty" schema:"required"`
	Message    *string  `json:"message,omitempty" schema:"required"`
}

type PassportElementErrorTranslationFile struct {
	Source   *string `json:"source,omitempty" schema:"required,const=translation_file"`
	Type     *string `json:"type,omitempty" schema:"required"`
	FileHash *string `json:"file_hash,omitempty" schema:"required"`
	Message  *string `json:"message,omitempty" schema:"required"`
}

type PassportElementErrorTranslationFiles struct {
	Source     *string  `json:"source,omitempty" schema:"required,const=translation_files"`
	Type       *string  `json:"type,omitempty" schema:"required"`
	FileHashes []string `json:"file_hashes,omitempty" schema:"required"`
	Message    *string  `json:"message,omitempty" schema:"required"`
}

type PassportElementErrorUnspecified struct {
	Source      *string `json:"source,omitempty" schema:"required,const=unspecified"`
	Type        *string `json:"type,omitempty" schema:"required"`
	ElementHash *string `json:"element_hash,omitempty" schema:"required"`
	Message     *string `json:"message,omitempty" schema:"required"`
}

func (*PassportElementErrorDataField) passportElementError()        {}
func (*PassportElementErrorFrontSide) passportElementError()        {}
func (*PassportElementErrorReverseSide) passportElementError()      {}
func (*PassportElementErrorSelfie) passportElementError()           {}
func (*PassportElementErrorFile) passportElementError()             {}
func (*PassportElementErrorFiles) passportElementError()            {}
func (*PassportElementErrorTranslationFile) passportElementError()  {}
func (*PassportElementErrorTranslationFiles) passportElementError() {}
func (*PassportElementErrorUnspecified) passportElementError()      {}

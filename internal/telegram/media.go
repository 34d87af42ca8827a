package telegram

// InputMedia is the content of a media message to be sent. Media and Thumb
// hold a file_id, an HTTP URL or an "attach://<name>" reference.
type InputMedia interface{ inputMedia() }

type InputMediaPhoto struct {
	Type            *string         `json:"type,omitempty" schema:"required,const=photo"`
	Media           *string         `json:"media,omitempty" schema:"required"`
	Caption         *string         `json:"caption,omitempty"`
	ParseMode       *string         `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
}

type InputMediaVideo struct {
	Type              *string         `json:"type,omitempty" schema:"required,const=video"`
	Media             *string         `json:"media,omitempty" schema:"required"`
	Thumb             *string         `json:"thumb,omitempty"`
	Caption           *string         `json:"caption,omitempty"`
	ParseMode         *string         `json:"parse_mode,omitempty"`
	CaptionEntities   []MessageEntity `json:"caption_entities,omitempty"`
	Width             *int            `json:"width,omitempty"`
	Height            *int            `json:"height,omitempty"`
	Duration          *int            `json:"duration,omitempty"`
	SupportsStreaming *bool           `json:"supports_streaming,omitempty"`
}

type InputMediaAnimation struct {
	Type            *string         `json:"type,omitempty" schema:"required,const=animation"`
	Media           *string         `json:"media,omitempty" schema:"required"`
	Thumb           *string         `json:"thumb,omitempty"`
	Caption         *string         `json:"caption,omitempty"`
	ParseMode       *string         `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	Width           *int            `json:"width,omitempty"`
	Height          *int            `json:"height,omitempty"`
	Duration        *int            `json:"duration,omitempty"`
}

type InputMediaAudio struct {
	Type            *string         `json:"type,omitempty" schema:"required,const=audio"`
	Media           *string         `json:"media,omitempty" schema:"required"`
	Thumb           *string         `json:"thumb,omitempty"`
	Caption         *string         `json:"caption,omitempty"`
	ParseMode       *string         `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	Duration        *int            `json:"duration,omitempty"`
	Performer       *string         `json:"performer,omitempty"`
	Title           *string         `json:"title,omitempty"`
}

type InputMediaDocument struct {
	Type                        *string         `json:"type,omitempty" schema:"required,const=document"`
	Media                       *string         `json:"media,omitempty" schema:"required"`
	Thumb                       *string         `json:"thumb,omitempty"`
	Caption                     *string         `json:"caption,omitempty"`
	ParseMode                   *string         `json:"parse_mode,omitempty"`
	CaptionEntities             []MessageEntity `json:"caption_entities,omitempty"`
	DisableContentTypeDetection *bool           `json:"disable_content_type_detection,omitempty"`
}

func (*InputMediaPhoto) inputMedia()     {}
func (*InputMediaVideo) inputMedia()     {}
func (*InputMediaAnimation) inputMedia() {}
func (*InputMediaAudio) inputMedia()     {}
func (*InputMediaDocument) inputMedia()  {}

package telegram

// InlineQuery is an incoming inline query.
type InlineQuery struct {
	ID       *string   `json:"id,omitempty"`
	From     *User     `json:"from,omitempty"`
	Query    *string   `json:"query,omitempty"`
	Offset   *string   `json:"offset,omitempty"`
	ChatType *string   `json:"chat_type,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// ChosenInlineResult is an inline result the user picked and sent.
type ChosenInlineResult struct {
	ResultID        *string   `json:"result_id,omitempty"`
	From            *User     `json:"from,omitempty"`
	Location        *Location `json:"location,omitempty"`
	InlineMessageID *string   `json:"inline_message_id,omitempty"`
	Query           *string   `json:"query,omitempty"`
}

type SentWebAppMessage struct {
	InlineMessageID *string `json:"inline_message_id,omitempty"`
}

// InlineQueryResult is one result of an inline query. Most variants are told
// apart by "type"; the cached variants share their type with the URL based
// ones and are told apart by which file field they carry.
type InlineQueryResult interface{ inlineQueryResult() }

type InlineQueryResultArticle struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=article"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty" schema:"required"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty" schema:"required"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	URL                 *string               `json:"url,omitempty"`
	HideURL             *bool                 `json:"hide_url,omitempty"`
	Description         *string               `json:"description,omitempty"`
	ThumbURL            *string               `json:"thumb_url,omitempty"`
	ThumbWidth          *int                  `json:"thumb_width,omitempty"`
	ThumbHeight         *int                  `json:"thumb_height,omitempty"`
}

type InlineQueryResultPhoto struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=photo"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	PhotoURL            *string               `json:"photo_url,omitempty" schema:"required"`
	ThumbURL            *string               `json:"thumb_url,omitempty" schema:"required"`
	PhotoWidth          *int                  `json:"photo_width,omitempty"`
	PhotoHeight         *int                  `json:"photo_height,omitempty"`
	Title               *string               `json:"title,omitempty"`
	Description         *string               `json:"description,omitempty"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultGif struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=gif"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	GifURL              *string               `json:"gif_url,omitempty" schema:"required"`
	GifWidth            *int                  `json:"gif_width,omitempty"`
	GifHeight           *int                  `json:"gif_height,omitempty"`
	GifDuration         *int                  `json:"gif_duration,omitempty"`
	ThumbURL            *string               `json:"thumb_url,omitempty" schema:"required"`
	ThumbMimeType       *string               `json:"thumb_mime_type,omitempty"`
	Title               *string               `json:"title,omitempty"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultMpeg4Gif struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=mpeg4_gif"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	Mpeg4URL            *string               `json:"mpeg4_url,omitempty" schema:"required"`
	Mpeg4Width          *int                  `json:"mpeg4_width,omitempty"`
	Mpeg4Height         *int                  `json:"mpeg4_height,omitempty"`
	Mpeg4Duration       *int                  `json:"mpeg4_duration,omitempty"`
	ThumbURL            *string               `json:"thumb_url,omitempty" schema:"required"`
	ThumbMimeType       *string               `json:"thumb_mime_type,omitempty"`
	Title               *string               `json:"title,omitempty"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultVideo struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=video"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	VideoURL            *string               `json:"video_url,omitempty" schema:"required"`
	MimeType            *string               `json:"mime_type,omitempty" schema:"required"`
	ThumbURL            *string               `json:"thumb_url,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty" schema:"required"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	VideoWidth          *int                  `json:"video_width,omitempty"`
	VideoHeight         *int                  `json:"video_height,omitempty"`
	VideoDuration       *int                  `json:"video_duration,omitempty"`
	Description         *string               `json:"description,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultAudio struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=audio"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	AudioURL            *string               `json:"audio_url,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty" schema:"required"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	Performer           *string               `json:"performer,omitempty"`
	AudioDuration       *int                  `json:"audio_duration,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultVoice struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=voice"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	VoiceURL            *string               `json:"voice_url,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty" schema:"required"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	VoiceDuration       *int                  `json:"voice_duration,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultDocument struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=document"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty" schema:"required"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	DocumentURL         *string               `json:"document_url,omitempty" schema:"required"`
	MimeType            *string               `json:"mime_type,omitempty" schema:"required"`
	Description         *string               `json:"description,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
	ThumbURL            *string               `json:"thumb_url,omitempty"`
	ThumbWidth          *int                  `json:"thumb_width,omitempty"`
	ThumbHeight         *int                  `json:"thumb_height,omitempty"`
}

type InlineQueryResultLocation struct {
	Type                 *string               `json:"type,omitempty" schema:"required,const=location"`
	ID                   *string               `json:"id,omitempty" schema:"required"`
	Latitude             *float64              `json:"latitude,omitempty" schema:"required"`
	Longitude            *float64              `json:"longitude,omitempty" schema:"required"`
	Title                *string               `json:"title,omitempty" schema:"required"`
	HorizontalAccuracy   *float64              `json:"horizontal_accuracy,omitempty"`
	LivePeriod           *int                  `json:"live_period,omitempty"`
	Heading              *int                  `json:"heading,omitempty"`
	ProximityAlertRadius *int                  `json:"proximity_alert_radius,omitempty"`
	ReplyMarkup          *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent  InputMessageContent   `json:"input_message_content,omitempty"`
	ThumbURL             *string               `json:"thumb_url,omitempty"`
	ThumbWidth           *int                  `json:"thumb_width,omitempty"`
	ThumbHeight          *int                  `json:"thumb_height,omitempty"`
}

type InlineQueryResultVenue struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=venue"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	Latitude            *float64              `json:"latitude,omitempty" schema:"required"`
	Longitude           *float64              `json:"longitude,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty" schema:"required"`
	Address             *string               `json:"address,omitempty" schema:"required"`
	FoursquareID        *string               `json:"foursquare_id,omitempty"`
	FoursquareType      *string               `json:"foursquare_type,omitempty"`
	GooglePlaceID       *string               `json:"google_place_id,omitempty"`
	GooglePlaceType     *string               `json:"google_place_type,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
	ThumbURL            *string               `json:"thumb_url,omitempty"`
	ThumbWidth          *int                  `json:"thumb_width,omitempty"`
	ThumbHeight         *int                  `json:"thumb_height,omitempty"`
}

type InlineQueryResultContact struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=contact"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	PhoneNumber         *string               `json:"phone_number,omitempty" schema:"required"`
	FirstName           *string               `json:"first_name,omitempty" schema:"required"`
	LastName            *string               `json:"last_name,omitempty"`
	VCard               *string               `json:"vcard,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
	ThumbURL            *string               `json:"thumb_url,omitempty"`
	ThumbWidth          *int                  `json:"thumb_width,omitempty"`
	ThumbHeight         *int                  `json:"thumb_height,omitempty"`
}

type InlineQueryResultGame struct {
	Type          *string               `json:"type,omitempty" schema:"required,const=game"`
	ID            *string               `json:"id,omitempty" schema:"required"`
	GameShortName *string               `json:"game_short_name,omitempty" schema:"required"`
	ReplyMarkup   *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

type InlineQueryResultCachedPhoto struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=photo"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	PhotoFileID         *string               `json:"photo_file_id,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty"`
	Description         *string               `json:"description,omitempty"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultCachedGif struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=gif"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	GifFileID           *string               `json:"gif_file_id,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultCachedMpeg4Gif struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=mpeg4_gif"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	Mpeg4FileID         *string               `json:"mpeg4_file_id,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultCachedSticker struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=sticker"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	StickerFileID       *string               `json:"sticker_file_id,omitempty" schema:"required"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultCachedDocument struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=document"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty" schema:"required"`
	DocumentFileID      *string               `json:"document_file_id,omitempty" schema:"required"`
	Description         *string               `json:"description,omitempty"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultCachedVideo struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=video"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	VideoFileID         *string               `json:"video_file_id,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty" schema:"required"`
	Description         *string               `json:"description,omitempty"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultCachedVoice struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=voice"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	VoiceFileID         *string               `json:"voice_file_id,omitempty" schema:"required"`
	Title               *string               `json:"title,omitempty" schema:"required"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

type InlineQueryResultCachedAudio struct {
	Type                *string               `json:"type,omitempty" schema:"required,const=audio"`
	ID                  *string               `json:"id,omitempty" schema:"required"`
	AudioFileID         *string               `json:"audio_file_id,omitempty" schema:"required"`
	Caption             *string               `json:"caption,omitempty"`
	ParseMode           *string               `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	InputMessageContent InputMessageContent   `json:"input_message_content,omitempty"`
}

func (*InlineQueryResultArticle) inlineQueryResult()        {}
func (*InlineQueryResultPhoto) inlineQueryResult()          {}
func (*InlineQueryResultGif) inlineQueryResult()            {}
func (*InlineQueryResultMpeg4Gif) inlineQueryResult()       {}
func (*InlineQueryResultVideo) inlineQueryResult()          {}
func (*InlineQueryResultAudio) inlineQueryResult()          {}
func (*InlineQueryResultVoice) inlineQueryResult()          {}
func (*InlineQueryResultDocument) inlineQueryResult()       {}
func (*InlineQueryResultLocation) inlineQueryResult()       {}
func (*InlineQueryResultVenue) inlineQueryResult()          {}
func (*InlineQueryResultContact) inlineQueryResult()        {}
func (*InlineQueryResultGame) inlineQueryResult()           {}
func (*InlineQueryResultCachedPhoto) inlineQueryResult()    {}
func (*InlineQueryResultCachedGif) inlineQueryResult()      {}
func (*InlineQueryResultCachedMpeg4Gif) inlineQueryResult() {}
func (*InlineQueryResultCachedSticker) inlineQueryResult()  {}
func (*InlineQueryResultCachedDocument) inlineQueryResult() {}
func (*InlineQueryResultCachedVideo) inlineQueryResult()    {}
func (*InlineQueryResultCachedVoice) inlineQueryResult()    {}
func (*InlineQueryResultCachedAudio) inlineQueryResult()    {}

// Article returns an article result that sends text when chosen.
func Article(id, title, text string) *InlineQueryResultArticle {
	return &InlineQueryResultArticle{
		Type:                Ptr("article"),
		ID:                  Ptr(id),
		Title:               Ptr(title),
		InputMessageContent: &InputTextMessageContent{MessageText: Ptr(text)},
	}
}

// InputMessageContent is the content of a message sent as the result of an
// inline query. It carries no discriminant: a venue is also a valid
// location, so venue is tried first.
type InputMessageContent interface{ inputMessageContent() }

type InputTextMessageContent struct {
	MessageText           *string         `json:"message_text,omitempty" schema:"required"`
	ParseMode             *string         `json:"parse_mode,omitempty"`
	Entities              []MessageEntity `json:"entities,omitempty"`
	DisableWebPagePreview *bool           `json:"disable_web_page_preview,omitempty"`
}

type InputVenueMessageContent struct {
	Latitude        *float64 `json:"latitude,omitempty" schema:"required"`
	Longitude       *float64 `json:"longitude,omitempty" schema:"required"`
	Title           *string  `json:"title,omitempty" schema:"required"`
	Address         *string  `json:"address,omitempty" schema:"required"`
	FoursquareID    *string  `json:"foursquare_id,omitempty"`
	FoursquareType  *string  `json:"foursquare_type,omitempty"`
	GooglePlaceID   *string  `json:"google_place_id,omitempty"`
	GooglePlaceType *string  `json:"google_place_type,omitempty"`
}

type InputLocationMessageContent struct {
	Latitude             *float64 `json:"latitude,omitempty" schema:"required"`
	Longitude            *float64 `json:"longitude,omitempty" schema:"required"`
	HorizontalAccuracy   *float64 `json:"horizontal_accuracy,omitempty"`
	LivePeriod           *int     `json:"live_period,omitempty"`
	Heading              *int     `json:"heading,omitempty"`
	ProximityAlertRadius *int     `json:"proximity_alert_radius,omitempty"`
}

type InputContactMessageContent struct {
	PhoneNumber *string `json:"phone_number,omitempty" schema:"required"`
	FirstName   *string `json:"first_name,omitempty" schema:"required"`
	LastName    *string `json:"last_name,omitempty"`
	VCard       *string `json:"vcard,omitempty"`
}

type InputInvoiceMessageContent struct {
	Title                     *string        `json:"title,omitempty" schema:"required"`
	Description               *string        `json:"description,omitempty" schema:"required"`
	Payload                   *string        `json:"payload,omitempty" schema:"required"`
	ProviderToken             *string        `json:"provider_token,omitempty" schema:"required"`
	Currency                  *string        `json:"currency,omitempty" schema:"required"`
	Prices                    []LabeledPrice `json:"prices,omitempty" schema:"required"`
	MaxTipAmount              *int           `json:"max_tip_amount,omitempty"`
	SuggestedTipAmounts       []int          `json:"suggested_tip_amounts,omitempty"`
	ProviderData              *string        `json:"provider_data,omitempty"`
	PhotoURL                  *string        `json:"photo_url,omitempty"`
	PhotoSize                 *int           `json:"photo_size,omitempty"`
	PhotoWidth                *int           `json:"photo_width,omitempty"`
	PhotoHeight               *int           `json:"photo_height,omitempty"`
	NeedName                  *bool          `json:"need_name,omitempty"`
	NeedPhoneNumber           *bool          `json:"need_phone_number,omitempty"`
	NeedEmail                 *bool          `json:"need_email,omitempty"`
	NeedShippingAddress       *bool          `json:"need_shipping_address,omitempty"`
	SendPhoneNumberToProvider *bool          `json:"send_phone_number_to_provider,omitempty"`
	SendEmailToProvider       *bool          `json:"send_email_to_provider,omitempty"`
	IsFlexible                *bool          `json:"is_flexible,omitempty"`
}

func (*InputTextMessageContent) inputMessageContent()     {}
func (*InputVenueMessageContent) inputMessageContent()    {}
func (*InputLocationMessageContent) inputMessageContent() {}
func (*InputContactMessageContent) inputMessageContent()  {}
func (*InputInvoiceMessageContent) inputMessageContent()  {}

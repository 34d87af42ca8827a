package telegram

// Wire objects of the Bot API. Every field is optional on the wire: scalars
// and nested objects are pointers, lists are slices, and absent or null keys
// decode to nil.

// WebhookInfo describes the current webhook status.
type WebhookInfo struct {
	URL                          *string  `json:"url,omitempty"`
	HasCustomCertificate         *bool    `json:"has_custom_certificate,omitempty"`
	PendingUpdateCount           *int     `json:"pending_update_count,omitempty"`
	IPAddress                    *string  `json:"ip_address,omitempty"`
	LastErrorDate                *int64   `json:"last_error_date,omitempty"`
	LastErrorMessage             *string  `json:"last_error_message,omitempty"`
	LastSynchronizationErrorDate *int64   `json:"last_synchronization_error_date,omitempty"`
	MaxConnections               *int     `json:"max_connections,omitempty"`
	AllowedUpdates               []string `json:"allowed_updates,omitempty"`
}

// User is a Telegram user or bot.
type User struct {
	ID                      *int64  `json:"id,omitempty"`
	IsBot                   *bool   `json:"is_bot,omitempty"`
	FirstName               *string `json:"first_name,omitempty"`
	LastName                *string `json:"last_name,omitempty"`
	Username                *string `json:"username,omitempty"`
	LanguageCode            *string `json:"language_code,omitempty"`
	CanJoinGroups           *bool   `json:"can_join_groups,omitempty"`
	CanReadAllGroupMessages *bool   `json:"can_read_all_group_messages,omitempty"`
	SupportsInlineQueries   *bool   `json:"supports_inline_queries,omitempty"`
}

// Chat is a private chat, group, supergroup or channel.
type Chat struct {
	ID                    *int64           `json:"id,omitempty"`
	Type                  *string          `json:"type,omitempty"`
	Title                 *string          `json:"title,omitempty"`
	Username              *string          `json:"username,omitempty"`
	FirstName             *string          `json:"first_name,omitempty"`
	LastName              *string          `json:"last_name,omitempty"`
	Photo                 *ChatPhoto       `json:"photo,omitempty"`
	Bio                   *string          `json:"bio,omitempty"`
	HasPrivateForwards    *bool            `json:"has_private_forwards,omitempty"`
	Description           *string          `json:"description,omitempty"`
	InviteLink            *string          `json:"invite_link,omitempty"`
	PinnedMessage         *Message         `json:"pinned_message,omitempty"`
	Permissions           *ChatPermissions `json:"permissions,omitempty"`
	SlowModeDelay         *int             `json:"slow_mode_delay,omitempty"`
	MessageAutoDeleteTime *int             `json:"message_auto_delete_time,omitempty"`
	HasProtectedContent   *bool            `json:"has_protected_content,omitempty"`
	StickerSetName        *string          `json:"sticker_set_name,omitempty"`
	CanSetStickerSet      *bool            `json:"can_set_sticker_set,omitempty"`
	LinkedChatID          *int64           `json:"linked_chat_id,omitempty"`
	Location              *ChatLocation    `json:"location,omitempty"`
}

// Message is a message in any kind of chat. The sender is keyed "from" on
// the wire.
type Message struct {
	MessageID                     *int64                         `json:"message_id,omitempty"`
	From                          *User                          `json:"from,omitempty"`
	SenderChat                    *Chat                          `json:"sender_chat,omitempty"`
	Date                          *int64                         `json:"date,omitempty"`
	Chat                          *Chat                          `json:"chat,omitempty"`
	ForwardFrom                   *User                          `json:"forward_from,omitempty"`
	ForwardFromChat               *Chat                          `json:"forward_from_chat,omitempty"`
	ForwardFromMessageID          *int64                         `json:"forward_from_message_id,omitempty"`
	ForwardSignature              *string                        `json:"forward_signature,omitempty"`
	ForwardSenderName             *string                        `json:"forward_sender_name,omitempty"`
	ForwardDate                   *int64                         `json:"forward_date,omitempty"`
	IsAutomaticForward            *bool                          `json:"is_automatic_forward,omitempty"`
	ReplyToMessage                *Message                       `json:"reply_to_message,omitempty"`
	ViaBot                        *User                          `json:"via_bot,omitempty"`
	EditDate                      *int64                         `json:"edit_date,omitempty"`
	HasProtectedContent           *bool                          `json:"has_protected_content,omitempty"`
	MediaGroupID                  *string                        `json:"media_group_id,omitempty"`
	AuthorSignature               *string                        `json:"author_signature,omitempty"`
	Text                          *string                        `json:"text,omitempty"`
	Entities                      []MessageEntity                `json:"entities,omitempty"`
	Animation                     *Animation                     `json:"animation,omitempty"`
	Audio                         *Audio                         `json:"audio,omitempty"`
	Document                      *Document                      `json:"document,omitempty"`
	Photo                         []PhotoSize                    `json:"photo,omitempty"`
	Sticker                       *Sticker                       `json:"sticker,omitempty"`
	Video                         *Video                         `json:"video,omitempty"`
	VideoNote                     *VideoNote                     `json:"video_note,omitempty"`
	Voice                         *Voice                         `json:"voice,omitempty"`
	Caption                       *string                        `json:"caption,omitempty"`
	CaptionEntities               []MessageEntity                `json:"caption_entities,omitempty"`
	Contact                       *Contact                       `json:"contact,omitempty"`
	Dice                          *Dice                          `json:"dice,omitempty"`
	Game                          *Game                          `json:"game,omitempty"`
	Poll                          *Poll                          `json:"poll,omitempty"`
	Venue                         *Venue                         `json:"venue,omitempty"`
	Location                      *Location                      `json:"location,omitempty"`
	NewChatMembers                []User                         `json:"new_chat_members,omitempty"`
	LeftChatMember                *User                          `json:"left_chat_member,omitempty"`
	NewChatTitle                  *string                        `json:"new_chat_title,omitempty"`
	NewChatPhoto                  []PhotoSize                    `json:"new_chat_photo,omitempty"`
	DeleteChatPhoto               *bool                          `json:"delete_chat_photo,omitempty"`
	GroupChatCreated              *bool                          `json:"group_chat_created,omitempty"`
	SupergroupChatCreated         *bool                          `json:"supergroup_chat_created,omitempty"`
	ChannelChatCreated            *bool                          `json:"channel_chat_created,omitempty"`
	MessageAutoDeleteTimerChanged *MessageAutoDeleteTimerChanged `json:"message_auto_delete_timer_changed,omitempty"`
	MigrateToChatID               *int64                         `json:"migrate_to_chat_id,omitempty"`
	MigrateFromChatID             *int64                         `json:"migrate_from_chat_id,omitempty"`
	PinnedMessage                 *Message                       `json:"pinned_message,omitempty"`
	Invoice                       *Invoice                       `json:"invoice,omitempty"`
	SuccessfulPayment             *SuccessfulPayment             `json:"successful_payment,omitempty"`
	ConnectedWebsite              *string                        `json:"connected_website,omitempty"`
	PassportData                  *PassportData                  `json:"passport_data,omitempty"`
	ProximityAlertTriggered       *ProximityAlertTriggered       `json:"proximity_alert_triggered,omitempty"`
	VideoChatScheduled            *VideoChatScheduled            `json:"video_chat_scheduled,omitempty"`
	VideoChatStarted              *VideoChatStarted              `json:"video_chat_started,omitempty"`
	VideoChatEnded                *VideoChatEnded                `json:"video_chat_ended,omitempty"`
	VideoChatParticipantsInvited  *VideoChatParticipantsInvited  `json:"video_chat_participants_invited,omitempty"`
	WebAppData                    *WebAppData                    `json:"web_app_data,omitempty"`
	ReplyMarkup                   *InlineKeyboardMarkup          `json:"reply_markup,omitempty"`
}

// MessageID is the result of copyMessage.
type MessageID struct {
	MessageID *int64 `json:"message_id,omitempty"`
}

// MessageEntity is a special entity in a text message: hashtag, URL, etc.
type MessageEntity struct {
	Type     *string `json:"type,omitempty"`
	Offset   *int    `json:"offset,omitempty"`
	Length   *int    `json:"length,omitempty"`
	URL      *string `json:"url,omitempty"`
	User     *User   `json:"user,omitempty"`
	Language *string `json:"language,omitempty"`
}

type PhotoSize struct {
	FileID       *string `json:"file_id,omitempty"`
	FileUniqueID *string `json:"file_unique_id,omitempty"`
	Width        *int    `json:"width,omitempty"`
	Height       *int    `json:"height,omitempty"`
	FileSize     *int64  `json:"file_size,omitempty"`
}

type Animation struct {
	FileID       *string    `json:"file_id,omitempty"`
	FileUniqueID *string    `json:"file_unique_id,omitempty"`
	Width        *int       `json:"width,omitempty"`
	Height       *int       `json:"height,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileName     *string    `json:"file_name,omitempty"`
	MimeType     *string    `json:"mime_type,omitempty"`
	FileSize     *int64     `json:"file_size,omitempty"`
}

type Audio struct {
	FileID       *string    `json:"file_id,omitempty"`
	FileUniqueID *string    `json:"file_unique_id,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Performer    *string    `json:"performer,omitempty"`
	Title        *string    `json:"title,omitempty"`
	FileName     *string    `json:"file_name,omitempty"`
	MimeType     *string    `json:"mime_type,omitempty"`
	FileSize     *int64     `json:"file_size,omitempty"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
}

type Document struct {
	FileID       *string    `json:"file_id,omitempty"`
	FileUniqueID *string    `json:"file_unique_id,omitempty"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileName     *string    `json:"file_name,omitempty"`
	MimeType     *string    `json:"mime_type,omitempty"`
	FileSize     *int64     `json:"file_size,omitempty"`
}

type Video struct {
	FileID       *string    `json:"file_id,omitempty"`
	FileUniqueID *string    `json:"file_unique_id,omitempty"`
	Width        *int       `json:"width,omitempty"`
	Height       *int       `json:"height,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileName     *string    `json:"file_name,omitempty"`
	MimeType     *string    `json:"mime_type,omitempty"`
	FileSize     *int64     `json:"file_size,omitempty"`
}

type VideoNote struct {
	FileID       *string    `json:"file_id,omitempty"`
	FileUniqueID *string    `json:"file_unique_id,omitempty"`
	Length       *int       `json:"length,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileSize     *int64     `json:"file_size,omitempty"`
}

type Voice struct {
	FileID       *string `json:"file_id,omitempty"`
	FileUniqueID *string `json:"file_unique_id,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	MimeType     *string `json:"mime_type,omitempty"`
	FileSize     *int64  `json:"file_size,omitempty"`
}

type Contact struct {
	PhoneNumber *string `json:"phone_number,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	UserID      *int64  `json:"user_id,omitempty"`
	VCard       *string `json:"vcard,omitempty"`
}

type Dice struct {
	Emoji *string `json:"emoji,omitempty"`
	Value *int    `json:"value,omitempty"`
}

type PollOption struct {
	Text       *string `json:"text,omitempty"`
	VoterCount *int    `json:"voter_count,omitempty"`
}

// PollAnswer is a user's answer in a non-anonymous poll.
type PollAnswer struct {
	PollID    *string `json:"poll_id,omitempty"`
	User      *User   `json:"user,omitempty"`
	OptionIDs []int   `json:"option_ids,omitempty"`
}

type Poll struct {
	ID                    *string         `json:"id,omitempty"`
	Question              *string         `json:"question,omitempty"`
	Options               []PollOption    `json:"options,omitempty"`
	TotalVoterCount       *int            `json:"total_voter_count,omitempty"`
	IsClosed              *bool           `json:"is_closed,omitempty"`
	IsAnonymous           *bool           `json:"is_anonymous,omitempty"`
	Type                  *string         `json:"type,omitempty"`
	AllowsMultipleAnswers *bool           `json:"allows_multiple_answers,omitempty"`
	CorrectOptionID       *int            `json:"correct_option_id,omitempty"`
	Explanation           *string         `json:"explanation,omitempty"`
	ExplanationEntities   []MessageEntity `json:"explanation_entities,omitempty"`
	OpenPeriod            *int            `json:"open_period,omitempty"`
	CloseDate             *int64          `json:"close_date,omitempty"`
}

type Location struct {
	Longitude            *float64 `json:"longitude,omitempty"`
	Latitude             *float64 `json:"latitude,omitempty"`
	HorizontalAccuracy   *float64 `json:"horizontal_accuracy,omitempty"`
	LivePeriod           *int     `json:"live_period,omitempty"`
	Heading              *int     `json:"heading,omitempty"`
	ProximityAlertRadius *int     `json:"proximity_alert_radius,omitempty"`
}

type Venue struct {
	Location        *Location `json:"location,omitempty"`
	Title           *string   `json:"title,omitempty"`
	Address         *string   `json:"address,omitempty"`
	FoursquareID    *string   `json:"foursquare_id,omitempty"`
	FoursquareType  *string   `json:"foursquare_type,omitempty"`
	GooglePlaceID   *string   `json:"google_place_id,omitempty"`
	GooglePlaceType *string   `json:"google_place_type,omitempty"`
}

type WebAppData struct {
	Data       *string `json:"data,omitempty"`
	ButtonText *string `json:"button_text,omitempty"`
}

type ProximityAlertTriggered struct {
	Traveler *User `json:"traveler,omitempty"`
	Watcher  *User `json:"watcher,omitempty"`
	Distance *int  `json:"distance,omitempty"`
}

type MessageAutoDeleteTimerChanged struct {
	MessageAutoDeleteTime *int `json:"message_auto_delete_time,omitempty"`
}

type VideoChatScheduled struct {
	StartDate *int64 `json:"start_date,omitempty"`
}

// VideoChatStarted carries no information yet.
type VideoChatStarted struct{}

type VideoChatEnded struct {
	Duration *int `json:"duration,omitempty"`
}

type VideoChatParticipantsInvited struct {
	Users []User `json:"users,omitempty"`
}

type UserProfilePhotos struct {
	TotalCount *int          `json:"total_count,omitempty"`
	Photos     [][]PhotoSize `json:"photos,omitempty"`
}

// File is a file ready to be downloaded via its FilePath.
type File struct {
	FileID       *string `json:"file_id,omitempty"`
	FileUniqueID *string `json:"file_unique_id,omitempty"`
	FileSize     *int64  `json:"file_size,omitempty"`
	FilePath     *string `json:"file_path,omitempty"`
}

type WebAppInfo struct {
	URL *string `json:"url,omitempty"`
}

type Sticker struct {
	FileID       *string       `json:"file_id,omitempty"`
	FileUniqueID *string       `json:"file_unique_id,omitempty"`
	Width        *int          `json:"width,omitempty"`
	Height       *int          `json:"height,omitempty"`
	IsAnimated   *bool         `json:"is_animated,omitempty"`
	IsVideo      *bool         `json:"is_video,omitempty"`
	Thumb        *PhotoSize    `json:"thumb,omitempty"`
	Emoji        *string       `json:"emoji,omitempty"`
	SetName      *string       `json:"set_name,omitempty"`
	MaskPosition *MaskPosition `json:"mask_position,omitempty"`
	FileSize     *int64        `json:"file_size,omitempty"`
}

type StickerSet struct {
	Name          *string    `json:"name,omitempty"`
	Title         *string    `json:"title,omitempty"`
	IsAnimated    *bool      `json:"is_animated,omitempty"`
	IsVideo       *bool      `json:"is_video,omitempty"`
	ContainsMasks *bool      `json:"contains_masks,omitempty"`
	Stickers      []Sticker  `json:"stickers,omitempty"`
	Thumb         *PhotoSize `json:"thumb,omitempty"`
}

type MaskPosition struct {
	Point  *string  `json:"point,omitempty"`
	XShift *float64 `json:"x_shift,omitempty"`
	YShift *float64 `json:"y_shift,omitempty"`
	Scale  *float64 `json:"scale,omitempty"`
}

type Game struct {
	Title        *string         `json:"title,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Photo        []PhotoSize     `json:"photo,omitempty"`
	Text         *string         `json:"text,omitempty"`
	TextEntities []MessageEntity `json:"text_entities,omitempty"`
	Animation    *Animation      `json:"animation,omitempty"`
}

// CallbackGame is a placeholder; it holds no information.
type CallbackGame struct{}

type GameHighScore struct {
	Position *int  `json:"position,omitempty"`
	User     *User `json:"user,omitempty"`
	Score    *int  `json:"score,omitempty"`
}

// ResponseParameters explains why a request was unsuccessful.
type ResponseParameters struct {
	MigrateToChatID *int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      *int   `json:"retry_after,omitempty"`
}

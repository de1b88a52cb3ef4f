package advertising

import "errors"

var ErrCampaignNotFound = errors.New("Campaign not found")

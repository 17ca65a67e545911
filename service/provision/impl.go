package provision

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
)

const apikeyHeader = "x-api-key"

type client struct {
	client   http.Client
	endpoint string
	timeout  time.Duration
	apikey   string
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:   cfg.HttpClient,
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		apikey:   cfg.Apikey,
	}
}

func (c *client) CreateAccount(ctx bCtx.Ctx, alias string) (*NewIdentity, error) {
	url := fmt.Sprintf("%s/accounts", c.endpoint)
	payload := map[string]string{"alias": alias}

	data, err := c.post(ctx, url, payload)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.post failed")
		return nil, err
	}

	res := &NewIdentity{}
	if err := json.Unmarshal(data, res); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	res.Address = res.Address.ToLower()
	return res, nil
}

func (c *client) MintAsset(ctx bCtx.Ctx, owner domain.Address, metadataUri string) (*MintedAsset, error) {
	url := fmt.Sprintf("%s/assets/mint", c.endpoint)
	payload := map[string]string{
		"owner":       owner.ToLowerStr(),
		"metadataUri": metadataUri,
	}

	data, err := c.post(ctx, url, payload)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.post failed")
		return nil, err
	}

	res := &MintedAsset{}
	if err := json.Unmarshal(data, res); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	res.CollectionId = res.CollectionId.ToLower()
	return res, nil
}

func (c *client) post(ctx bCtx.Ctx, url string, payload interface{}) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if len(c.apikey) > 0 {
		req.Header.Set(apikeyHeader, c.apikey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}

	return ioutil.ReadAll(resp.Body)
}

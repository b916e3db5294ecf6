package main

import (
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
)

func newClient(apiURL string) *resty.Client {
	return resty.New().SetBaseURL(apiURL)
}

func runRegister(apiURL, username, password string, out io.Writer) error {
	resp, err := newClient(apiURL).R().
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/register")
	if err != nil {
		return err
	}
	return printResponse(resp, out)
}

func runLogin(apiURL, username, password string, out io.Writer) error {
	resp, err := newClient(apiURL).R().
		SetFormData(map[string]string{"username": username, "password": password}).
		Post("/token")
	if err != nil {
		return err
	}
	return printResponse(resp, out)
}

func runSetupProfile(apiURL, token string, goals, principles []string, out io.Writer) error {
	resp, err := newClient(apiURL).R().
		SetAuthToken(token).
		SetBody(map[string]interface{}{"goals": goals, "principles": principles}).
		Post("/setup-profile")
	if err != nil {
		return err
	}
	return printResponse(resp, out)
}

func runSummarize(apiURL, token, transcript string, out io.Writer) error {
	resp, err := newClient(apiURL).R().
		SetAuthToken(token).
		SetBody(map[string]string{"transcript": transcript}).
		Post("/summarize")
	if err != nil {
		return err
	}
	return printResponse(resp, out)
}

func runSearch(apiURL, token, query string, out io.Writer) error {
	resp, err := newClient(apiURL).R().
		SetAuthToken(token).
		SetBody(map[string]string{"query_text": query}).
		Post("/search")
	if err != nil {
		return err
	}
	return printResponse(resp, out)
}

func printResponse(resp *resty.Response, out io.Writer) error {
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	_, err := fmt.Fprintln(out, resp.String())
	return err
}
